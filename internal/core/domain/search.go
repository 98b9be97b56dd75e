package domain

import "strings"

// PriceRange is an inclusive price interval. A range with Min > Max is
// accepted as given and simply matches nothing.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether the price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// SearchFilters constrains a catalog search. All fields are optional
// and combined with AND.
type SearchFilters struct {
	// Category requires an exact category match when set.
	Category Category `json:"category,omitempty"`

	// Gender matches the product gender exactly, or unisex products.
	Gender Gender `json:"gender,omitempty"`

	// InStock requires an exact availability match when set.
	InStock *bool `json:"inStock,omitempty"`

	// PriceRange keeps products priced within the inclusive interval.
	PriceRange *PriceRange `json:"priceRange,omitempty"`

	// Colors matches when any requested color is a case-insensitive
	// substring of any product color.
	Colors []string `json:"colors,omitempty"`

	// Sizes matches when any requested size equals a product size exactly.
	Sizes []string `json:"sizes,omitempty"`
}

// Matches reports whether the product passes every set filter.
func (f SearchFilters) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Gender != "" && p.Gender != f.Gender && p.Gender != GenderUnisex {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if len(f.Colors) > 0 && !matchesAnyColor(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !matchesAnySize(p.Sizes, f.Sizes) {
		return false
	}
	return true
}

func matchesAnyColor(have, want []string) bool {
	for _, w := range want {
		wl := strings.ToLower(w)
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), wl) {
				return true
			}
		}
	}
	return false
}

func matchesAnySize(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
