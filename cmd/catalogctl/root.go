package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/catalog-in-go/pkg/config"
	"github.com/doodlesbykumbi/catalog-in-go/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Manage the software catalog",
	Long:  `Manage catalog entities, their locations and the database schema.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logging.Init(config.Get().LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level, using info: %v\n", err)
			_ = logging.Init("info")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
