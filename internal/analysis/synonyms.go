package analysis

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// seedGroup is one static synonym group, always present regardless of
// catalog content.
type seedGroup struct {
	base  string
	words []string
}

// staticSeed covers colors and materials. The customer vocabulary mixes
// Russian and English, hence the bilingual groups.
var staticSeed = []seedGroup{
	// Colors
	{"черный", []string{"black", "темный"}},
	{"белый", []string{"white", "светлый"}},
	{"красный", []string{"red", "алый", "бордовый"}},
	{"синий", []string{"blue", "голубой", "темно-синий"}},
	{"зеленый", []string{"green", "салатовый", "изумрудный"}},
	{"желтый", []string{"yellow", "золотистый"}},
	{"серый", []string{"gray", "grey", "серебристый"}},
	{"коричневый", []string{"brown", "бежевый", "кофейный"}},

	// Materials
	{"кожа", []string{"leather", "кожаный"}},
	{"хлопок", []string{"cotton", "хлопковый"}},
	{"шелк", []string{"silk", "шелковый"}},
	{"шерсть", []string{"wool", "шерстяной"}},
}

// categoryBaseWords anchors synonym expansion: each category's defining
// words are compared against the vocabulary observed in that category.
var categoryBaseWords = map[domain.Category][]string{
	domain.CategoryClothing:    {"одежда", "платье", "рубашка", "брюки", "джинсы", "куртка", "свитер", "футболка"},
	domain.CategoryShoes:       {"обувь", "туфли", "кроссовки", "ботинки", "сандалии"},
	domain.CategoryAccessories: {"аксессуары", "сумка", "часы", "шарф", "платок"},
	domain.CategoryJewelry:     {"украшения", "кольцо", "серьги", "цепочка", "браслет"},
	domain.CategoryUnderwear:   {"белье", "трусы", "бюстгальтер"},
}

// SynonymCatalog maps base words to related words for query and text
// expansion. Entries only ever grow: refreshes merge additively and never
// remove a word from a set.
type SynonymCatalog struct {
	params       Params
	now          func() time.Time
	entries      map[string][]string
	lastAnalysis time.Time
	fingerprint  uint64
}

// NewSynonymCatalog creates an empty synonym catalog.
func NewSynonymCatalog(params Params) *SynonymCatalog {
	return &SynonymCatalog{
		params:  params,
		now:     time.Now,
		entries: make(map[string][]string),
	}
}

// SetClock overrides the time source. Useful for testing the staleness
// window.
func (s *SynonymCatalog) SetClock(now func() time.Time) {
	s.now = now
}

// IsStale reports whether the last analysis is older than the staleness
// window at the given instant. A catalog never analyzed is stale.
func (s *SynonymCatalog) IsStale(now time.Time) bool {
	if s.lastAnalysis.IsZero() {
		return true
	}
	return now.Sub(s.lastAnalysis) >= s.params.StalenessWindow
}

// Len reports the number of base words.
func (s *SynonymCatalog) Len() int {
	return len(s.entries)
}

// LastAnalysis returns when the catalog was last analyzed.
func (s *SynonymCatalog) LastAnalysis() time.Time {
	return s.lastAnalysis
}

// Lookup returns a copy of the word → related-words mapping.
func (s *SynonymCatalog) Lookup() map[string][]string {
	out := make(map[string][]string, len(s.entries))
	for base, words := range s.entries {
		out[base] = append([]string(nil), words...)
	}
	return out
}

// Refresh re-derives synonyms from the catalog. Content replacement always
// forces a refresh; an unchanged catalog is re-analyzed only after the
// staleness window has elapsed.
func (s *SynonymCatalog) Refresh(products []domain.Product) {
	fp := catalogFingerprint(products)
	if fp == s.fingerprint && !s.IsStale(s.now()) {
		logger.Debug("Synonym refresh skipped: catalog unchanged, analysis is fresh")
		return
	}

	logger.Section("Synonym Analysis")
	logger.Debug("Analyzing %d products", len(products))

	for _, g := range staticSeed {
		s.merge(g.base, g.words...)
	}

	categoryWords := collectCategoryVocabulary(products)
	s.expandByCategory(categoryWords)
	s.expandByPattern(products)

	s.fingerprint = fp
	s.lastAnalysis = s.now()
	logger.Info("Synonym analysis complete: %d groups", len(s.entries))
}

// merge appends words to the base word's set, skipping duplicates and the
// base word itself. This is the only mutation path, which keeps the
// catalog append-only.
func (s *SynonymCatalog) merge(base string, words ...string) {
	set := s.entries[base]
	for _, w := range words {
		if w == base || containsWord(set, w) {
			continue
		}
		set = append(set, w)
	}
	s.entries[base] = set
}

func containsWord(set []string, w string) bool {
	for _, s := range set {
		if s == w {
			return true
		}
	}
	return false
}

// collectCategoryVocabulary groups observed words by product category.
func collectCategoryVocabulary(products []domain.Product) map[domain.Category][]string {
	seen := make(map[domain.Category]map[string]struct{})
	vocab := make(map[domain.Category][]string)

	for _, p := range products {
		if seen[p.Category] == nil {
			seen[p.Category] = make(map[string]struct{})
		}
		for _, w := range extractWords(p) {
			if _, ok := seen[p.Category][w]; ok {
				continue
			}
			seen[p.Category][w] = struct{}{}
			vocab[p.Category] = append(vocab[p.Category], w)
		}
	}
	return vocab
}

// expandByCategory compares each category's defining base words against
// that category's observed vocabulary. A word qualifies when one is a
// substring of the other or the edit-distance similarity clears the
// threshold.
func (s *SynonymCatalog) expandByCategory(vocab map[domain.Category][]string) {
	for _, cat := range domain.AllCategories {
		words := vocab[cat]
		if len(words) == 0 {
			continue
		}
		for _, base := range categoryBaseWords[cat] {
			for _, w := range words {
				if strings.Contains(w, base) || strings.Contains(base, w) ||
					Similarity(w, base) > s.params.CategorySimilarity {
					s.merge(base, w)
				}
			}
		}
	}
}

// wordPair is an ordered pair of words observed in one product's text.
type wordPair struct {
	a, b string
}

// expandByPattern links words that repeatedly co-occur within the same
// product and look alike. Links are symmetric.
func (s *SynonymCatalog) expandByPattern(products []domain.Product) {
	counts := make(map[wordPair]int)
	for _, p := range products {
		words := extractWords(p)
		for i := 0; i < len(words); i++ {
			for j := i + 1; j < len(words); j++ {
				counts[wordPair{words[i], words[j]}]++
			}
		}
	}

	pairs := make([]wordPair, 0, len(counts))
	for pair, n := range counts {
		if n >= s.params.MinCooccurrence && s.similarWords(pair.a, pair.b) {
			pairs = append(pairs, pair)
		}
	}
	// Stable merge order regardless of map iteration.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	for _, pair := range pairs {
		s.merge(pair.a, pair.b)
		s.merge(pair.b, pair.a)
	}
}

// similarWords reports whether two words are close enough to be treated
// as synonyms: both at least 3 runes and either one contains the other or
// their edit-distance similarity clears the pattern threshold.
func (s *SynonymCatalog) similarWords(a, b string) bool {
	if utf8.RuneCountInString(a) < 3 || utf8.RuneCountInString(b) < 3 {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return Similarity(a, b) > s.params.PatternSimilarity
}

// catalogFingerprint identifies a catalog snapshot by id and by the
// textual fields the analysis reads. Ids alone are not enough: an edit
// that keeps ids but changes names, tags or colors must still force a
// refresh.
func catalogFingerprint(products []domain.Product) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d;", len(products))
	for _, p := range products {
		for _, field := range []string{p.ID, p.Name, p.Description, p.Subcategory, string(p.Category)} {
			h.Write([]byte(field))
			h.Write([]byte{0})
		}
		for _, tag := range p.Tags {
			h.Write([]byte(tag))
			h.Write([]byte{0})
		}
		for _, color := range p.Colors {
			h.Write([]byte(color))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return h.Sum64()
}
