// Package server wires the gateway together: configuration, logging,
// the document path resolver, the four tool providers, Prometheus metrics,
// and the Gin router with its middleware stack. It owns the HTTP server
// lifecycle including graceful shutdown.
package server
