package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// entityCmd represents the entity command
var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Manage entities",
	Long:  `Manage catalog entities.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'entity' requires a subcommand (apply, list, get, remove)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(entityCmd)
}
