package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/ingestion"
)

// locationWatchCmd represents the location watch command
var locationWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Watch a file location and refresh it when it changes",
	Long: `Watch the target of a file location and refresh the location every
time the file is written or replaced. The location is refreshed once on
start.

Example:
  catalogctl location watch 3f1c9a52-5d0e-4b8e-9d55-0c6b7b1e2f10`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchLocation(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch location: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	locationCmd.AddCommand(locationWatchCmd)
}

func watchLocation(ctx context.Context, id string) error {
	database, err := openDatabase()
	if err != nil {
		return err
	}

	loc, err := database.Location(ctx, id)
	if err != nil {
		return err
	}
	if loc.Type != ingestion.LocationTypeFile {
		return fmt.Errorf("%w: %s", ingestion.ErrUnsupportedLocationType, loc.Type)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so editors that replace the file are noticed
	target := filepath.Clean(loc.Target)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}

	fmt.Printf("Watching %s for changes (location: %s)\n", target, loc.ID)
	if err := runRefresh(ctx, database, *loc); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing location: %v\n", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, refreshing location...\n", time.Now().Format(time.RFC3339))
				if err := runRefresh(ctx, database, *loc); err != nil {
					fmt.Fprintf(os.Stderr, "Error refreshing location: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
