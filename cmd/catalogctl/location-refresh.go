package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/ingestion"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// locationRefreshCmd represents the location refresh command
var locationRefreshCmd = &cobra.Command{
	Use:   "refresh <id>",
	Short: "Read a location and apply its entities",
	Long: `Read every descriptor of a location and add or update its entities.

Each descriptor is recorded in the location update log, see
"catalogctl location log".

Example:
  catalogctl location refresh 3f1c9a52-5d0e-4b8e-9d55-0c6b7b1e2f10`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := refreshLocation(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to refresh location: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationRefreshCmd)
}

func refreshLocation(ctx context.Context, id string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	loc, err := database.Location(ctx, id)
	if err != nil {
		return err
	}

	return runRefresh(ctx, database, *loc)
}

func runRefresh(ctx context.Context, database store.Database, loc catalog.Location) error {
	result, err := ingestion.NewRefresher(database).Refresh(ctx, loc)
	if err != nil {
		return err
	}

	for _, applied := range result.Applied {
		fmt.Printf("applied %s (generation %d)\n", applied.Entity.Ref(), applied.Entity.Generation())
	}
	for _, failed := range result.Failed {
		fmt.Printf("failed %s: %v\n", failed.Name, failed.Err)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d entities failed", len(result.Failed), len(result.Failed)+len(result.Applied))
	}
	return nil
}
