package domain

// CategoryRelation captures the inferred affinity of one category to the
// rest of the catalog. Relations are rebuilt wholesale on every analysis
// cycle; previous values are fully discarded.
type CategoryRelation struct {
	// Category is the anchor category.
	Category Category

	// RelatedCategories share at least one of the anchor's top tags.
	RelatedCategories []Category

	// ComplementaryQueries are pre-rendered search phrases used to find
	// basket-completing products.
	ComplementaryQueries []string
}

// IsRelatedTo reports whether the given category was found related.
func (r CategoryRelation) IsRelatedTo(c Category) bool {
	for _, rc := range r.RelatedCategories {
		if rc == c {
			return true
		}
	}
	return false
}
