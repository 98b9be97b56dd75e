// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProductIndex: Substring-tolerant lexical index with TF scoring.
//     Keyword search is always required.
//
// # Optional Interfaces
//
//   - CatalogSource: Loads catalog snapshots from an external location.
//     Without it, the engine runs on the built-in dataset or an injected
//     snapshot.
//   - ConfigStore: Engine tuning parameters. Without it, compiled-in
//     defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
