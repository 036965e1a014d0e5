package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/catalog"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/ingestion"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/store"
)

// entityApplyCmd represents the entity apply command
var entityApplyCmd = &cobra.Command{
	Use:   "apply -f <file>",
	Short: "Add or update entities from a descriptor file",
	Long: `Add or update every entity of a YAML descriptor file.

The file may hold several documents separated by "---". All entities are
applied in a single transaction: if one fails, none is written. Use "-" to
read from stdin.

Example:
  catalogctl entity apply -f catalog-info.yaml
  catalogctl entity apply -f catalog-info.yaml --location 3f1c9a52-5d0e-4b8e-9d55-0c6b7b1e2f10`,
	Run: func(cmd *cobra.Command, args []string) {
		filename, _ := cmd.Flags().GetString("filename")
		locationID, _ := cmd.Flags().GetString("location")

		if err := applyEntities(cmd.Context(), filename, locationID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply entities: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	entityCmd.AddCommand(entityApplyCmd)
	entityApplyCmd.Flags().StringP("filename", "f", "", "Descriptor file")
	entityApplyCmd.Flags().String("location", "", "Location id to attach the entities to")
	_ = entityApplyCmd.MarkFlagRequired("filename")
}

func applyEntities(ctx context.Context, filename, locationID string) error {
	var r io.Reader = os.Stdin
	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open descriptor file: %w", err)
		}
		defer func() { _ = file.Close() }()
		r = file
	}

	entities, err := ingestion.DecodeDescriptors(r)
	if err != nil {
		return fmt.Errorf("failed to parse descriptor file: %w", err)
	}

	database, err := openDatabase()
	if err != nil {
		return err
	}

	var loc *string
	if locationID != "" {
		loc = &locationID
	}

	var applied []catalog.EntityResponse
	err = database.Transaction(ctx, func(tx store.Database) error {
		for _, entity := range entities {
			resp, err := tx.AddOrUpdateEntity(ctx, catalog.AddEntityRequest{LocationID: loc, Entity: entity})
			if err != nil {
				return fmt.Errorf("%s: %w", entity.Ref(), err)
			}
			applied = append(applied, *resp)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, resp := range applied {
		fmt.Printf("%s applied (uid %s, generation %d)\n", resp.Entity.Ref(), resp.Entity.UID(), resp.Entity.Generation())
	}
	return nil
}
