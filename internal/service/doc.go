// Package service provides the provider registry behind the tool surface.
//
// The registry maintains a catalog of document service providers and handles
// discovery, tool execution and relevance scoring for caller intents.
//
// Components:
//   - Registry: central service catalog
//   - Provider: interface for service implementations
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(wordProvider)
//	services := registry.Discover("create a word document", 5)
//	result, err := registry.Execute(ctx, "word.create", params, appCtx)
package service
