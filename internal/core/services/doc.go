// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Engine owns the catalog generation: one immutable snapshot of the
// product set together with all state derived from it (synonym catalog
// view, affinity graph, lexical index). Replacing the catalog builds a
// complete new generation and swaps it in under a single lock, so readers
// always observe a consistent triple.
package services
