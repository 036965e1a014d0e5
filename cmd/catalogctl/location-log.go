package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// locationLogCmd represents the location log command
var locationLogCmd = &cobra.Command{
	Use:   "log <id>",
	Short: "Show the update log of a location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showLocationLog(cmd.Context(), args[0], output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show location log: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationLogCmd)
	locationLogCmd.Flags().StringP("output", "o", "text", "Output format (text, yaml or json)")
}

func showLocationLog(ctx context.Context, id, output string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	events, err := database.LocationHistory(ctx, id)
	if err != nil {
		return err
	}

	if output != "text" {
		return writeOutput(os.Stdout, output, events)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSTATUS\tCOMPONENT\tMESSAGE")
	for _, event := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			event.CreatedAt.Format(time.RFC3339),
			event.Status,
			orDash(event.ComponentName),
			orDash(event.Message),
		)
	}
	return w.Flush()
}
