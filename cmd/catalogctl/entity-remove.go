package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// entityRemoveCmd represents the entity remove command
var entityRemoveCmd = &cobra.Command{
	Use:   "remove <uid>",
	Short: "Remove an entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := removeEntity(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove entity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Entity %s removed\n", args[0])
	},
}

func init() {
	entityCmd.AddCommand(entityRemoveCmd)
}

func removeEntity(ctx context.Context, uid string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}
	return database.RemoveEntity(ctx, uid)
}
