package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

var productCmd = &cobra.Command{
	Use:   "product [id]",
	Short: "Show one product by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial]",
	Short: "Show autocomplete suggestions for a partial query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Catalog == nil {
		return errors.New("catalog service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	product, err := cfg.Catalog.GetProduct(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("Product %s not found.\n", args[0])
			return nil
		}
		return err
	}

	cmd.Println(domain.FormatProduct(*product))
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Search == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	suggestions, err := cfg.Search.Suggestions(ctx, args[0])
	if err != nil {
		return fmt.Errorf("suggestions failed: %w", err)
	}

	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		cmd.Println(s)
	}
	return nil
}
