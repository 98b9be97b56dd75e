package analysis

import "time"

// Params carries the empirical tuning constants of the analyzers.
// The defaults were tuned by trial on real catalogs; treat them as
// configuration, not invariants.
type Params struct {
	// CategorySimilarity is the minimum normalized edit-distance
	// similarity for category-anchored synonym expansion.
	CategorySimilarity float64

	// PatternSimilarity is the minimum normalized edit-distance
	// similarity for co-occurrence-pattern synonym expansion.
	PatternSimilarity float64

	// MinCooccurrence is how often a word pair must appear together
	// before it is considered for a synonym link.
	MinCooccurrence int

	// StalenessWindow is the minimum time between analyses of an
	// otherwise-unchanged catalog.
	StalenessWindow time.Duration
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		CategorySimilarity: 0.6,
		PatternSimilarity:  0.7,
		MinCooccurrence:    2,
		StalenessWindow:    24 * time.Hour,
	}
}
