package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// entityListCmd represents the entity list command
var entityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entities",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := listEntities(cmd.Context(), output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list entities: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	entityCmd.AddCommand(entityListCmd)
	entityListCmd.Flags().StringP("output", "o", "text", "Output format (text, yaml or json)")
}

func listEntities(ctx context.Context, output string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	entities, err := database.Entities(ctx)
	if err != nil {
		return err
	}

	if output != "text" {
		return writeOutput(os.Stdout, output, entities)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UID\tKIND\tNAMESPACE\tNAME\tGENERATION\tLOCATION")
	for _, resp := range entities {
		e := resp.Entity
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.UID(), e.Kind, orDash(e.Namespace()), e.Name(), e.Generation(), orDash(resp.LocationID))
	}
	return w.Flush()
}
