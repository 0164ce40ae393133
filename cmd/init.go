package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weijiayao/finance-tracker/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example settings file to get started",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteExampleSettings(flagSettings); err != nil {
			return err
		}
		fmt.Printf("Wrote example settings to %s; edit it and run 'finance-tracker plan'.\n", flagSettings)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
