package providers

import (
	"context"

	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/types"
)

const wordLabel = "Word document"

// Word provides word-processing document tools
type Word struct {
	resolver *office.Resolver
}

// NewWord creates a word document provider rooted at the resolver's base
// directory
func NewWord(resolver *office.Resolver) *Word {
	return &Word{resolver: resolver}
}

// Definition returns service metadata
func (w *Word) Definition() types.Service {
	return types.Service{
		ID:          "word",
		Name:        "Word Documents",
		Description: "Create, read, append to and delete Word (.docx) documents",
		Category:    types.CategoryDocuments,
		Capabilities: []string{
			"create",
			"read",
			"update",
			"delete",
		},
		Tools: []types.Tool{
			{
				ID:          "word.create",
				Name:        "Create Word Document",
				Description: "Create a new Word document with optional opening content",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Document name, .docx appended if absent", Required: true},
					{Name: "content", Type: "string", Description: "Opening paragraph, placeholder if empty", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "word.read",
				Name:        "Read Word Document",
				Description: "Read all paragraphs as newline-joined text",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Document name", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "word.update",
				Name:        "Append Paragraphs",
				Description: "Append each change as a new paragraph, existing content untouched",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Document name", Required: true},
					{Name: "changes", Type: "array", Description: "Lines to append, one paragraph each", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "word.delete",
				Name:        "Delete Word Document",
				Description: "Remove a Word document from the library",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Document name", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute runs a word document operation
func (w *Word) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "word.create":
		return w.create(params)
	case "word.read":
		return w.read(params)
	case "word.update":
		return w.update(params)
	case "word.delete":
		return w.delete(params)
	default:
		return failure(failf("unknown tool: %s", toolID))
	}
}

func (w *Word) create(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := w.resolver.Resolve(filename, office.Word)
	if err != nil {
		return failureFrom(wordLabel, "create", err)
	}

	if err := office.CreateWord(path, optStrParam(params, "content")); err != nil {
		return failureFrom(wordLabel, "create", err)
	}

	return success(map[string]interface{}{
		"message": okf("Created Word document: %s", path),
		"path":    path,
	})
}

func (w *Word) read(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := w.resolver.Resolve(filename, office.Word)
	if err != nil {
		return failureFrom(wordLabel, "read", err)
	}

	text, err := office.ReadWord(path)
	if err != nil {
		return failureFrom(wordLabel, "read", err)
	}

	return success(map[string]interface{}{
		"message": text,
		"path":    path,
	})
}

func (w *Word) update(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}
	changes, ok := linesParam(params, "changes")
	if !ok {
		return failure(failf("changes parameter must be an array of strings"))
	}

	path, err := w.resolver.Resolve(filename, office.Word)
	if err != nil {
		return failureFrom(wordLabel, "update", err)
	}

	count, err := office.AppendWord(path, changes)
	if err != nil {
		return failureFrom(wordLabel, "update", err)
	}

	return success(map[string]interface{}{
		"message": okf("Updated Word doc %s with %d changes.", filename, count),
		"path":    path,
		"count":   count,
	})
}

func (w *Word) delete(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := w.resolver.Resolve(filename, office.Word)
	if err != nil {
		return failureFrom(wordLabel, "delete", err)
	}

	if err := office.DeleteWord(path); err != nil {
		return failureFrom(wordLabel, "delete", err)
	}

	return success(map[string]interface{}{
		"message": deletedf("Deleted Word doc: %s", path),
		"path":    path,
	})
}
