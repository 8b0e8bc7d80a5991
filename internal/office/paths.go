package office

import (
	"path/filepath"
	"strings"
)

// Resolver maps logical document names onto paths confined to a base
// directory. Resolution is pure: no filesystem access, no existence checks.
type Resolver struct {
	base string
}

// NewResolver creates a resolver rooted at base.
func NewResolver(base string) *Resolver {
	return &Resolver{base: base}
}

// Base returns the configured base directory.
func (r *Resolver) Base() string {
	return r.base
}

// Resolve normalizes a user-supplied name to a path under the base
// directory, appending the format's canonical extension if absent.
// Names that would escape the base directory are rejected.
func (r *Resolver) Resolve(name string, f Format) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalidName(name, "name is empty")
	}
	if filepath.IsAbs(trimmed) {
		return "", invalidName(name, "absolute paths are not allowed")
	}
	clean := filepath.Clean(trimmed)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", invalidName(name, "parent directory segments are not allowed")
	}
	if !strings.EqualFold(filepath.Ext(clean), f.Ext()) {
		clean += f.Ext()
	}
	return filepath.Join(r.base, clean), nil
}
