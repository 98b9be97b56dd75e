package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

var (
	browseGender string
	browseLimit  int
)

var browseCmd = &cobra.Command{
	Use:   "browse [category]",
	Short: "List in-stock products of one category",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseGender, "gender", "", "filter by gender (men, women, unisex)")
	browseCmd.Flags().IntVarP(&browseLimit, "limit", "n", 10, "maximum number of products")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Catalog == nil {
		return errors.New("catalog service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	cat, err := domain.ParseCategory(args[0])
	if err != nil {
		return err
	}

	var gender domain.Gender
	if browseGender != "" {
		gender, err = domain.ParseGender(browseGender)
		if err != nil {
			return err
		}
	}

	products, err := cfg.Catalog.ProductsByCategory(ctx, cat, gender, browseLimit)
	if err != nil {
		return err
	}

	cmd.Println(domain.FormatProducts(products))
	return nil
}
