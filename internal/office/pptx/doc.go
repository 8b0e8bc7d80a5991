// Package pptx implements a minimal codec for presentation packages.
//
// A presentation package is a zip archive of XML parts. This codec writes
// the parts a slide deck needs to round-trip through this service: the
// content-types manifest, the package relationships, the presentation part
// with its slide list, and one slide part per slide carrying a title and a
// body placeholder. Reading walks the slide parts in presentation order and
// exposes only text-bearing placeholder shapes.
package pptx
