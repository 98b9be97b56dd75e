// Package domain defines the core business entities for Vitrina.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: An immutable catalog record
//   - SearchFilters: Structured constraints applied to search results
//   - CategoryRelation: Inferred affinity between product categories
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
