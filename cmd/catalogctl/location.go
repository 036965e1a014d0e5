package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// locationCmd represents the location command
var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations",
	Long:  `Manage the locations entities are read from.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'location' requires a subcommand (add, list, show, remove, refresh, watch, log)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(locationCmd)
}
