// Package providers exposes the document gateway as service tools.
//
// One provider per document format (word, spreadsheet, presentation) plus a
// library provider for listing what exists in the base directory. Providers
// are pure composition: resolve the logical name, delegate to the office
// adapter, render the outcome. Every outcome -- success or any failure --
// becomes a Result carrying a marker-prefixed status message; providers
// never propagate an error to the dispatcher.
package providers
