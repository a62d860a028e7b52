package cmd

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "coursecatalog",
	Short:        "Course catalog backend",
	SilenceUsage: true,
}

// Execute loads an optional .env file and runs the root command.
func Execute() error {
	_ = godotenv.Load()
	return rootCmd.ExecuteContext(context.Background())
}
