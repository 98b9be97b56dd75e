package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

var similarLimit int

var complementCmd = &cobra.Command{
	Use:   "complement [id]",
	Short: "Show products that pair with the given one",
	Long: `Finds up to five in-stock products that complete an outfit built
around the given product, using the learned category-affinity graph.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplement,
}

var similarCmd = &cobra.Command{
	Use:   "similar [id]",
	Short: "Show products resembling the given one",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 5, "maximum number of results")
	rootCmd.AddCommand(complementCmd)
	rootCmd.AddCommand(similarCmd)
}

func runComplement(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Recommend == nil {
		return errors.New("recommendation service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	products, err := cfg.Recommend.ComplementaryProducts(ctx, args[0])
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	cmd.Println(domain.FormatProducts(products))
	return nil
}

func runSimilar(cmd *cobra.Command, args []string) error {
	if cfg == nil || cfg.Recommend == nil {
		return errors.New("recommendation service not configured")
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	products, err := cfg.Recommend.SimilarProducts(ctx, args[0], similarLimit)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	cmd.Println(domain.FormatProducts(products))
	return nil
}
