package cmd

import (
	"fmt"
	"golang-wifid/internal/adapter/lifecycle"
	"golang-wifid/internal/pkg/config"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file and print the interface compatibility table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}

		table, err := buildTable(cfg.Hardware)
		if err != nil {
			return err
		}

		fmt.Printf("Config %s is valid\n\n", configFlag)
		if err := table.Write(os.Stdout); err != nil {
			return err
		}
		for i, req := range cfg.Interfaces {
			kind, _ := req.Kind()
			fmt.Printf("\ninterfaces[%d]: %s requested by %s", i, kind, req.Requestor)
		}
		if len(cfg.Interfaces) > 0 {
			fmt.Println()
		}
		return nil
	},
}

// buildTable creates the compatibility table from the hardware section.
func buildTable(hw config.HardwareConfig) (*lifecycle.CompatibilityTable, error) {
	pairs, err := hw.ExclusivePairs()
	if err != nil {
		return nil, err
	}
	return lifecycle.NewCompatibilityTable(hw.Slots(), pairs)
}

func init() {
	checkCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := checkCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(checkCmd)
}
