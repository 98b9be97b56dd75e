// Package analysis derives search intelligence from catalog statistics.
//
// Two structures are maintained, with deliberately different merge
// disciplines:
//
//   - SynonymCatalog: word → related-words mapping. Static seed plus two
//     catalog-derived generators. Append-only: sets grow across refreshes
//     and entries are never removed.
//   - AffinityGraph: per-category related categories and complementary
//     query phrases inferred from tag co-occurrence. Replaced wholesale on
//     every rebuild.
//
// Both are recomputed synchronously when the catalog is replaced; the
// synonym catalog additionally gates repeated analysis of an unchanged
// catalog behind a staleness window.
package analysis
