// Package main is the entry point for the officegate server.
//
// The server exposes Word, Excel, and PowerPoint document operations as
// dispatchable tools over a small REST surface:
//
//	GET  /services            lists registered services and their tools
//	POST /services/discover   ranks services against a free-form intent
//	POST /services/execute    runs one tool by ID
//
// Configuration follows 12-factor conventions: environment variables, an
// optional YAML file (-config), and CLI flags that override both.
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -docs /var/lib/officegate
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// SIGINT and SIGTERM trigger a graceful shutdown.
package main
