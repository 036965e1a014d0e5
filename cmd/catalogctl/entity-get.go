package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
)

// entityGetCmd represents the entity get command
var entityGetCmd = &cobra.Command{
	Use:   "get <[namespace/]name>",
	Short: "Show an entity",
	Long: `Show an entity by name and namespace, or by uid with --uid.

Example:
  catalogctl entity get finance/payments
  catalogctl entity get --uid 9b2d5f7e-1c4a-4e0b-8a61-2f3d4c5b6a79 -o json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		uid, _ := cmd.Flags().GetString("uid")

		if (uid == "") == (len(args) == 0) {
			fmt.Fprintln(os.Stderr, "error: pass either a [namespace/]name or --uid")
			os.Exit(1)
		}

		ref := ""
		if len(args) > 0 {
			ref = args[0]
		}
		if err := getEntity(cmd.Context(), ref, uid, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get entity: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	entityCmd.AddCommand(entityGetCmd)
	entityGetCmd.Flags().StringP("output", "o", "yaml", "Output format (yaml or json)")
	entityGetCmd.Flags().String("uid", "", "Look the entity up by uid")
}

func getEntity(ctx context.Context, ref, uid, output string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	var resp *catalog.EntityResponse
	if uid != "" {
		resp, err = database.EntityByUID(ctx, uid)
	} else {
		name, namespace := splitRef(ref)
		resp, err = database.Entity(ctx, name, namespace)
	}
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, output, resp)
}
