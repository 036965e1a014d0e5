package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// locationShowCmd represents the location show command
var locationShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showLocation(cmd.Context(), args[0], output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show location: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationShowCmd)
	locationShowCmd.Flags().StringP("output", "o", "yaml", "Output format (yaml or json)")
}

func showLocation(ctx context.Context, id, output string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	loc, err := database.Location(ctx, id)
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, output, loc)
}
