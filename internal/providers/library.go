package providers

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/types"
)

// DocumentInfo represents document metadata
type DocumentInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Format   string    `json:"format"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Library lists what exists in the base directory. There is no index beyond
// the filesystem listing itself.
type Library struct {
	resolver *office.Resolver
}

// NewLibrary creates a library provider rooted at the resolver's base
// directory
func NewLibrary(resolver *office.Resolver) *Library {
	return &Library{resolver: resolver}
}

// Definition returns service metadata
func (l *Library) Definition() types.Service {
	return types.Service{
		ID:          "library",
		Name:        "Document Library",
		Description: "List and inspect the documents in the base directory",
		Category:    types.CategoryLibrary,
		Capabilities: []string{
			"list",
			"stat",
		},
		Tools: []types.Tool{
			{
				ID:          "library.list",
				Name:        "List Documents",
				Description: "List all office documents in the base directory",
				Parameters: []types.Parameter{
					{Name: "format", Type: "string", Description: "Restrict to word, spreadsheet or presentation", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "library.stat",
				Name:        "Document Info",
				Description: "Metadata and detected content type for one document",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Document name with extension", Required: true},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a library operation
func (l *Library) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "library.list":
		return l.list(params)
	case "library.stat":
		return l.stat(params)
	default:
		return failure(failf("unknown tool: %s", toolID))
	}
}

func (l *Library) list(params map[string]interface{}) (*types.Result, error) {
	wanted := optStrParam(params, "format")

	entries, err := os.ReadDir(l.resolver.Base())
	if err != nil {
		return failure(failf("Failed to list documents: %v", err))
	}

	docs := make([]DocumentInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := formatForExt(filepath.Ext(entry.Name()))
		if !ok {
			continue
		}
		if wanted != "" && format.String() != wanted {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		docs = append(docs, DocumentInfo{
			Name:     entry.Name(),
			Path:     filepath.Join(l.resolver.Base(), entry.Name()),
			Format:   format.String(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	return success(map[string]interface{}{
		"message":   okf("Found %d documents", len(docs)),
		"documents": docs,
		"count":     len(docs),
	})
}

func (l *Library) stat(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	format, ok := formatForExt(filepath.Ext(filename))
	if !ok {
		return failure(failf("Unsupported document extension: %s", filepath.Ext(filename)))
	}

	path, err := l.resolver.Resolve(filename, format)
	if err != nil {
		return failureFrom("document", "stat", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return failure(failf("File not found: %s", path))
	}

	detected := ""
	if mt, err := mimetype.DetectFile(path); err == nil {
		detected = mt.String()
	}

	return success(map[string]interface{}{
		"message":   okf("Document info: %s", path),
		"name":      filename,
		"path":      path,
		"format":    format.String(),
		"size":      info.Size(),
		"modified":  info.ModTime(),
		"mime_type": detected,
	})
}

func formatForExt(ext string) (office.Format, bool) {
	switch strings.ToLower(ext) {
	case ".docx":
		return office.Word, true
	case ".xlsx":
		return office.Spreadsheet, true
	case ".pptx":
		return office.Presentation, true
	default:
		return office.Word, false
	}
}
