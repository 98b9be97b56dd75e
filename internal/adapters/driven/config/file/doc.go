// Package file provides the TOML-backed configuration store.
//
// The store carries the engine's empirical tuning constants: the
// similarity thresholds of the synonym generators, the co-occurrence
// minimum and the staleness window. These were tuned by trial, so they
// live in configuration rather than code.
package file
