package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

var (
	searchCategory string
	searchGender   string
	searchMinPrice float64
	searchMaxPrice float64
	searchAll      bool
	searchColors   []string
	searchSizes    []string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Searches the catalog with synonym expansion and relevance ranking.
An empty query lists the whole catalog subject to the filters.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category (clothing, accessories, jewelry, shoes, underwear)")
	searchCmd.Flags().StringVar(&searchGender, "gender", "", "filter by gender (men, women, unisex)")
	searchCmd.Flags().Float64Var(&searchMinPrice, "min-price", 0, "minimum price in rubles")
	searchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", 0, "maximum price in rubles")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "include out-of-stock products")
	searchCmd.Flags().StringSliceVar(&searchColors, "color", nil, "filter by color (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchSizes, "size", nil, "filter by size (repeatable)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Search == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := buildSearchFilters()
	if err != nil {
		return err
	}

	products, err := cfg.Search.Search(ctx, query, filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(products, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(domain.FormatProducts(products))
	return nil
}

func buildSearchFilters() (domain.SearchFilters, error) {
	var filters domain.SearchFilters

	if searchCategory != "" {
		cat, err := domain.ParseCategory(searchCategory)
		if err != nil {
			return filters, err
		}
		filters.Category = cat
	}
	if searchGender != "" {
		g, err := domain.ParseGender(searchGender)
		if err != nil {
			return filters, err
		}
		filters.Gender = g
	}

	if !searchAll {
		inStock := true
		filters.InStock = &inStock
	}

	if searchMinPrice > 0 || searchMaxPrice > 0 {
		max := searchMaxPrice
		if max <= 0 {
			max = 1e12
		}
		filters.PriceRange = &domain.PriceRange{Min: searchMinPrice, Max: max}
	}

	filters.Colors = searchColors
	filters.Sizes = searchSizes
	return filters, nil
}
