package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appserver "github.com/eslsoft/coursecatalog/internal/app/server"
	"github.com/eslsoft/coursecatalog/internal/core"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and quizzes from a YAML catalog",
	Long: "Load categories and quizzes from a YAML catalog. Categories are matched by name and\n" +
		"quizzes by lesson and question, so re-running a catalog only adds new entries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := readCatalog(seedFile)
		if err != nil {
			return err
		}

		seeder, cleanup, err := appserver.InitializeSeeder(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := seeder.Apply(cmd.Context(), catalog)
		if err != nil {
			return err
		}
		cmd.Printf("categories created: %d, skipped: %d; quizzes created: %d, skipped: %d\n",
			report.CategoriesCreated, report.CategoriesSkipped, report.QuizzesCreated, report.QuizzesSkipped)
		return nil
	},
}

func readCatalog(path string) (core.SeedCatalog, error) {
	var catalog core.SeedCatalog
	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("read catalog: %w", err)
	}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return catalog, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "catalog.yaml", "path to the YAML catalog")
	rootCmd.AddCommand(seedCmd)
}
