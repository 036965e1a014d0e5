package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// locationRemoveCmd represents the location remove command
var locationRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a location",
	Long: `Remove a location.

A location that entities still reference cannot be removed; remove those
entities first.

Example:
  catalogctl location remove 3f1c9a52-5d0e-4b8e-9d55-0c6b7b1e2f10`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := removeLocation(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove location: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Location %s removed\n", args[0])
	},
}

func init() {
	locationCmd.AddCommand(locationRemoveCmd)
}

func removeLocation(ctx context.Context, id string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}
	return database.RemoveLocation(ctx, id)
}
