package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/config"
)

// locationAddCmd represents the location add command
var locationAddCmd = &cobra.Command{
	Use:   "add <type> <target>",
	Short: "Register a location",
	Long: `Register a location. Registering a target that already exists prints
the existing location.

The type must be listed in the location_types configuration attribute.

Example:
  catalogctl location add file /srv/catalog/catalog-info.yaml`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := addLocation(cmd.Context(), args[0], args[1], output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add location: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationAddCmd)
	locationAddCmd.Flags().StringP("output", "o", "yaml", "Output format (yaml or json)")
}

func addLocation(ctx context.Context, locationType, target, output string) error {
	if !config.Get().IsLocationTypeAllowed(locationType) {
		return fmt.Errorf("location type %q is not enabled (location_types: %v)", locationType, config.Get().LocationTypes)
	}

	database, err := openDatabase()
	if err != nil {
		return err
	}

	loc, err := database.AddLocation(ctx, catalog.Location{Type: locationType, Target: target})
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, output, loc)
}
