// Package http provides the HTTP handlers for the gateway's tool surface:
// service listing, intent-based discovery, and tool execution.
package http
