package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// SearchProductsInput is the input schema for the search_products tool.
type SearchProductsInput struct {
	Query    string   `json:"query" jsonschema:"free-text search query (product name, description, clothing type, etc.)"`
	Category string   `json:"category,omitempty" jsonschema:"product category: clothing, accessories, jewelry, shoes or underwear"`
	Gender   string   `json:"gender,omitempty" jsonschema:"target gender: men, women or unisex"`
	MinPrice *float64 `json:"min_price,omitempty" jsonschema:"minimum price in rubles"`
	MaxPrice *float64 `json:"max_price,omitempty" jsonschema:"maximum price in rubles"`
	InStock  *bool    `json:"in_stock,omitempty" jsonschema:"only products in stock (default true)"`
	Colors   []string `json:"colors,omitempty" jsonschema:"requested colors"`
	Sizes    []string `json:"sizes,omitempty" jsonschema:"requested sizes"`
}

// ProductsOutput is the output schema shared by product-returning tools:
// the formatted presentation text plus the result count.
type ProductsOutput struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// ProductIDInput identifies a single product.
type ProductIDInput struct {
	ProductID string `json:"product_id" jsonschema:"the product id"`
}

// BrowseInput is the input schema for the get_products_by_category tool.
type BrowseInput struct {
	Category string `json:"category" jsonschema:"product category: clothing, accessories, jewelry, shoes or underwear"`
	Gender   string `json:"gender,omitempty" jsonschema:"optional gender filter: men, women or unisex"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of products to show (default 10)"`
}

// SummaryInput is the (empty) input schema for get_catalog_summary.
type SummaryInput struct{}

// SummaryOutput carries the rendered catalog overview.
type SummaryOutput struct {
	Text          string `json:"text"`
	TotalProducts int    `json:"total_products"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_products",
		Description: "Find catalog products matching a customer query",
	}, s.handleSearchProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_product",
		Description: "Get detailed information about one product by its id",
	}, s.handleGetProduct)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_complementary_products",
		Description: "Find products that pair well with the given one, to build outfits and grow the basket",
	}, s.handleComplementaryProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_products_by_category",
		Description: "List in-stock products of one category",
	}, s.handleProductsByCategory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_catalog_summary",
		Description: "Get a short overview of the catalog with per-category counts",
	}, s.handleCatalogSummary)
}

// handleSearchProducts handles the search_products tool invocation.
func (s *Server) handleSearchProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchProductsInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	filters, err := buildFilters(input)
	if err != nil {
		return nil, ProductsOutput{}, err
	}

	products, err := s.ports.Search.Search(ctx, input.Query, filters)
	if err != nil {
		return nil, ProductsOutput{}, err
	}

	return nil, ProductsOutput{
		Text:  domain.FormatProducts(products),
		Count: len(products),
	}, nil
}

// buildFilters validates the raw tool input into search filters.
// Unknown category or gender values fail fast before reaching the engine.
func buildFilters(input SearchProductsInput) (domain.SearchFilters, error) {
	var filters domain.SearchFilters

	if input.Category != "" {
		cat, err := domain.ParseCategory(input.Category)
		if err != nil {
			return filters, err
		}
		filters.Category = cat
	}
	if input.Gender != "" {
		g, err := domain.ParseGender(input.Gender)
		if err != nil {
			return filters, err
		}
		filters.Gender = g
	}

	// The sales assistant wants in-stock products unless told otherwise.
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	filters.InStock = &inStock

	if input.MinPrice != nil || input.MaxPrice != nil {
		pr := domain.PriceRange{Min: 0, Max: maxPrice}
		if input.MinPrice != nil {
			pr.Min = *input.MinPrice
		}
		if input.MaxPrice != nil {
			pr.Max = *input.MaxPrice
		}
		filters.PriceRange = &pr
	}

	filters.Colors = input.Colors
	filters.Sizes = input.Sizes
	return filters, nil
}

// maxPrice is the open upper bound used when only a minimum is given.
const maxPrice = 1e12

// handleGetProduct handles the get_product tool invocation.
func (s *Server) handleGetProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductIDInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	product, err := s.ports.Catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrCatalogEmpty) {
			return nil, ProductsOutput{Text: "Товар с указанным ID не найден.", Count: 0}, nil
		}
		return nil, ProductsOutput{}, err
	}

	return nil, ProductsOutput{
		Text:  domain.FormatProduct(*product),
		Count: 1,
	}, nil
}

// handleComplementaryProducts handles the get_complementary_products
// tool invocation.
func (s *Server) handleComplementaryProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductIDInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	products, err := s.ports.Recommend.ComplementaryProducts(ctx, input.ProductID)
	if err != nil {
		return nil, ProductsOutput{}, err
	}

	if len(products) == 0 {
		return nil, ProductsOutput{Text: "Дополняющие товары не найдены.", Count: 0}, nil
	}

	return nil, ProductsOutput{
		Text:  "Товары, которые отлично дополнят ваш выбор:\n\n" + domain.FormatProducts(products),
		Count: len(products),
	}, nil
}

// handleProductsByCategory handles the get_products_by_category tool
// invocation.
func (s *Server) handleProductsByCategory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, ProductsOutput, error) {
	cat, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, ProductsOutput{}, err
	}

	var gender domain.Gender
	if input.Gender != "" {
		gender, err = domain.ParseGender(input.Gender)
		if err != nil {
			return nil, ProductsOutput{}, err
		}
	}

	products, err := s.ports.Catalog.ProductsByCategory(ctx, cat, gender, input.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			products = nil
		} else {
			return nil, ProductsOutput{}, err
		}
	}

	return nil, ProductsOutput{
		Text:  domain.FormatProducts(products),
		Count: len(products),
	}, nil
}

// handleCatalogSummary handles the get_catalog_summary tool invocation.
func (s *Server) handleCatalogSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	stats, err := s.ports.Catalog.CategoryStats(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}
	categories, err := s.ports.Catalog.AvailableCategories(ctx)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	total := 0
	for _, n := range stats {
		total += n
	}

	return nil, SummaryOutput{
		Text:          domain.FormatCatalogSummary(categories, stats),
		TotalProducts: total,
	}, nil
}
