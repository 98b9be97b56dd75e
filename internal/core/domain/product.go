package domain

import "fmt"

// Category is one of the fixed product categories in the catalog.
type Category string

// Known product categories.
const (
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryJewelry     Category = "jewelry"
	CategoryShoes       Category = "shoes"
	CategoryUnderwear   Category = "underwear"
)

// AllCategories lists every known category in a fixed order.
var AllCategories = []Category{
	CategoryClothing,
	CategoryAccessories,
	CategoryJewelry,
	CategoryShoes,
	CategoryUnderwear,
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
}

// DisplayName returns the Russian customer-facing name of the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryClothing:
		return "Одежда"
	case CategoryAccessories:
		return "Аксессуары"
	case CategoryJewelry:
		return "Ювелирные изделия"
	case CategoryShoes:
		return "Обувь"
	case CategoryUnderwear:
		return "Нижнее белье"
	default:
		return string(c)
	}
}

// Gender is the target audience of a product.
type Gender string

// Known genders. Unisex products match any gender filter.
const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// ParseGender validates a raw gender string.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMen, GenderWomen, GenderUnisex:
		return Gender(s), nil
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
}

// Product is an immutable catalog record. Textual fields are treated
// case-insensitively by the engine; ID is unique within one snapshot.
type Product struct {
	// ID is the unique identifier within a catalog snapshot.
	ID string `json:"id"`

	// Name is the customer-facing product name.
	Name string `json:"name"`

	// Description is the free-text product description.
	Description string `json:"description"`

	// Category is one of the fixed catalog categories.
	Category Category `json:"category"`

	// Subcategory is free text (e.g. "вечернее платье").
	Subcategory string `json:"subcategory"`

	// Gender is the target audience.
	Gender Gender `json:"gender"`

	// Price is the non-negative price in rubles.
	Price float64 `json:"price"`

	// Colors lists available colors, in catalog order.
	Colors []string `json:"colors"`

	// Sizes lists available sizes, in catalog order.
	Sizes []string `json:"sizes"`

	// Tags drive both search and category affinity inference.
	Tags []string `json:"tags"`

	// InStock reports current availability.
	InStock bool `json:"inStock"`
}

// Validate checks boundary-level invariants of a single record.
// Malformed records fail fast before reaching the engine.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: product %s: name is required", ErrInvalidInput, p.ID)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return fmt.Errorf("product %s: %w", p.ID, err)
	}
	if _, err := ParseGender(string(p.Gender)); err != nil {
		return fmt.Errorf("product %s: %w", p.ID, err)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: product %s: negative price", ErrInvalidInput, p.ID)
	}
	return nil
}
