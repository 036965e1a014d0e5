package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// locationListCmd represents the location list command
var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered locations",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := listLocations(cmd.Context(), output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list locations: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationListCmd)
	locationListCmd.Flags().StringP("output", "o", "text", "Output format (text, yaml or json)")
}

func listLocations(ctx context.Context, output string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	locations, err := database.Locations(ctx)
	if err != nil {
		return err
	}

	if output != "text" {
		return writeOutput(os.Stdout, output, locations)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTARGET")
	for _, loc := range locations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", loc.ID, loc.Type, loc.Target)
	}
	return w.Flush()
}
