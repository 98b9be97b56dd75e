package analysis

import (
	"sort"
	"strings"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// topTagCount bounds how many of a category's most frequent tags drive
// the relation analysis.
const topTagCount = 5

// complementRules is the fixed category → complement-category table.
var complementRules = map[domain.Category][]domain.Category{
	domain.CategoryClothing:    {domain.CategoryAccessories, domain.CategoryShoes, domain.CategoryJewelry},
	domain.CategoryShoes:       {domain.CategoryClothing, domain.CategoryAccessories},
	domain.CategoryAccessories: {domain.CategoryClothing, domain.CategoryJewelry},
	domain.CategoryJewelry:     {domain.CategoryClothing, domain.CategoryAccessories},
	domain.CategoryUnderwear:   {domain.CategoryClothing},
}

// categorySearchTerms renders a complement category as a search phrase.
var categorySearchTerms = map[domain.Category][]string{
	domain.CategoryClothing:    {"одежда", "платье", "рубашка"},
	domain.CategoryShoes:       {"обувь", "туфли", "кроссовки"},
	domain.CategoryAccessories: {"аксессуары", "сумка"},
	domain.CategoryJewelry:     {"украшения", "кольцо"},
	domain.CategoryUnderwear:   {"белье"},
}

// styleVocabulary are the tags that may anchor style-based complementary
// queries.
var styleVocabulary = map[string]struct{}{
	"классический": {},
	"спортивный":   {},
	"элегантный":   {},
	"повседневный": {},
}

// maxStyleQueries caps how many style-based phrases a category gets.
const maxStyleQueries = 2

// AffinityGraph holds per-category relations inferred from tag
// co-occurrence. Rebuild replaces everything; there is no incremental
// merge. One graph instance belongs to one catalog generation.
type AffinityGraph struct {
	relations map[domain.Category]domain.CategoryRelation
	order     []domain.Category
}

// NewAffinityGraph creates an empty graph.
func NewAffinityGraph() *AffinityGraph {
	return &AffinityGraph{relations: make(map[domain.Category]domain.CategoryRelation)}
}

// Len reports the number of categories with relations.
func (g *AffinityGraph) Len() int {
	return len(g.relations)
}

// RelationOf returns the relation for a category, if the category was
// present in the analyzed catalog.
func (g *AffinityGraph) RelationOf(c domain.Category) (domain.CategoryRelation, bool) {
	rel, ok := g.relations[c]
	return rel, ok
}

// Rebuild replaces all relations from a catalog snapshot. Categories and
// tags are processed in first-observed catalog order, which makes the
// result deterministic for identical content.
func (g *AffinityGraph) Rebuild(products []domain.Product) {
	g.relations = make(map[domain.Category]domain.CategoryRelation)
	g.order = nil

	tagCounts := make(map[domain.Category]map[string]int)
	tagOrder := make(map[domain.Category][]string)

	for _, p := range products {
		if tagCounts[p.Category] == nil {
			tagCounts[p.Category] = make(map[string]int)
			g.order = append(g.order, p.Category)
		}
		for _, tag := range p.Tags {
			if tagCounts[p.Category][tag] == 0 {
				tagOrder[p.Category] = append(tagOrder[p.Category], tag)
			}
			tagCounts[p.Category][tag]++
		}
	}

	for _, cat := range g.order {
		top := topTags(tagCounts[cat], tagOrder[cat])

		var related []domain.Category
		for _, other := range g.order {
			if other == cat {
				continue
			}
			if sharesAnyTag(top, tagCounts[other]) {
				related = append(related, other)
			}
		}

		g.relations[cat] = domain.CategoryRelation{
			Category:             cat,
			RelatedCategories:    related,
			ComplementaryQueries: complementaryQueries(cat, top, related),
		}
	}

	logger.Debug("Affinity graph rebuilt: %d category relations", len(g.relations))
}

// topTags picks the most frequent tags, ties resolved by first-observed
// order.
func topTags(counts map[string]int, order []string) []string {
	tags := append([]string(nil), order...)
	sort.SliceStable(tags, func(i, j int) bool {
		return counts[tags[i]] > counts[tags[j]]
	})
	if len(tags) > topTagCount {
		tags = tags[:topTagCount]
	}
	return tags
}

func sharesAnyTag(tags []string, counts map[string]int) bool {
	for _, t := range tags {
		if counts[t] > 0 {
			return true
		}
	}
	return false
}

// complementaryQueries renders the category's pre-built search phrases:
// one phrase per complement category confirmed by the tag analysis, plus
// up to two style-anchored phrases.
func complementaryQueries(cat domain.Category, top []string, related []domain.Category) []string {
	complements := complementRules[cat]

	var queries []string
	for _, comp := range complements {
		if !containsCategory(related, comp) {
			continue
		}
		if phrase := strings.Join(categorySearchTerms[comp], " "); phrase != "" {
			queries = append(queries, phrase)
		}
	}

	compNames := make([]string, len(complements))
	for i, c := range complements {
		compNames[i] = string(c)
	}
	styleCount := 0
	for _, tag := range top {
		if styleCount >= maxStyleQueries {
			break
		}
		if _, ok := styleVocabulary[tag]; !ok {
			continue
		}
		if len(compNames) == 0 {
			continue
		}
		queries = append(queries, tag+" "+strings.Join(compNames, " "))
		styleCount++
	}

	return queries
}

func containsCategory(set []domain.Category, c domain.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
