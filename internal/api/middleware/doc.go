// Package middleware provides Gin middleware: CORS, per-IP rate limiting,
// and request correlation IDs.
package middleware
