// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Vitrina. It exposes the catalog operations as tools for the
// conversational sales assistant driving the engine.
package mcp

import "errors"

// Errors returned when required services are not provided.
var (
	ErrMissingSearchService         = errors.New("mcp: search service is required")
	ErrMissingCatalogService        = errors.New("mcp: catalog service is required")
	ErrMissingRecommendationService = errors.New("mcp: recommendation service is required")
)
