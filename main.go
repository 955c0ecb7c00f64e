package main

import "golang-wifid/cmd"

func main() {
	cmd.Execute()
}
