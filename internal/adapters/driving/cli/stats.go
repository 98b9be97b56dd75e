package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog summary and analysis state",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if cfg == nil || cfg.Catalog == nil {
		return errors.New("catalog service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	stats, err := cfg.Catalog.CategoryStats(ctx)
	if err != nil {
		return err
	}
	categories, err := cfg.Catalog.AvailableCategories(ctx)
	if err != nil {
		return err
	}

	cmd.Println(domain.FormatCatalogSummary(categories, stats))
	cmd.Println()

	analysis, err := cfg.Catalog.AnalysisStats(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Generation:         %s\n", analysis.Generation)
	cmd.Printf("Synonym groups:     %d\n", analysis.SynonymGroups)
	cmd.Printf("Category relations: %d\n", analysis.CategoryRelations)
	cmd.Printf("Last analysis:      %s\n", analysis.LastAnalysis.Format("2006-01-02 15:04:05"))
	return nil
}
