package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-wifid",
	Short: "golang-wifid manages the lifecycle of Wi-Fi radio interfaces",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
