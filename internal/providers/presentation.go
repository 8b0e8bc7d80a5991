package providers

import (
	"context"

	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/types"
)

const deckLabel = "PowerPoint"

// Presentation provides slide deck tools
type Presentation struct {
	resolver *office.Resolver
}

// NewPresentation creates a presentation provider rooted at the resolver's
// base directory
func NewPresentation(resolver *office.Resolver) *Presentation {
	return &Presentation{resolver: resolver}
}

// Definition returns service metadata
func (p *Presentation) Definition() types.Service {
	return types.Service{
		ID:          "presentation",
		Name:        "Presentations",
		Description: "Create, read, append slides to and delete PowerPoint (.pptx) decks",
		Category:    types.CategoryDocuments,
		Capabilities: []string{
			"create",
			"read",
			"update",
			"delete",
		},
		Tools: []types.Tool{
			{
				ID:          "presentation.create",
				Name:        "Create Presentation",
				Description: "Create a new deck holding a single title slide",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Deck name, .pptx appended if absent", Required: true},
					{Name: "title", Type: "string", Description: "Title slide heading", Required: false},
					{Name: "content", Type: "string", Description: "Title slide body text", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "presentation.read",
				Name:        "Read Presentation",
				Description: "Read the deck as numbered per-slide text blocks",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Deck name", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "presentation.update",
				Name:        "Append Slides",
				Description: "Append one slide per entry; existing slides untouched",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Deck name", Required: true},
					{Name: "slides", Type: "array", Description: "Entries of {title, body}", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "presentation.delete",
				Name:        "Delete Presentation",
				Description: "Remove a deck from the library",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Deck name", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute runs a presentation operation
func (p *Presentation) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "presentation.create":
		return p.create(params)
	case "presentation.read":
		return p.read(params)
	case "presentation.update":
		return p.update(params)
	case "presentation.delete":
		return p.delete(params)
	default:
		return failure(failf("unknown tool: %s", toolID))
	}
}

func (p *Presentation) create(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	title := optStrParam(params, "title")
	if title == "" {
		title = "New Presentation"
	}

	path, err := p.resolver.Resolve(filename, office.Presentation)
	if err != nil {
		return failureFrom(deckLabel, "create", err)
	}

	if err := office.CreatePresentation(path, title, optStrParam(params, "content")); err != nil {
		return failureFrom(deckLabel, "create", err)
	}

	return success(map[string]interface{}{
		"message": okf("Created PowerPoint: %s", path),
		"path":    path,
	})
}

func (p *Presentation) read(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := p.resolver.Resolve(filename, office.Presentation)
	if err != nil {
		return failureFrom(deckLabel, "read", err)
	}

	text, err := office.ReadPresentation(path)
	if err != nil {
		return failureFrom(deckLabel, "read", err)
	}

	return success(map[string]interface{}{
		"message": text,
		"path":    path,
	})
}

func (p *Presentation) update(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}
	slides, ok := slidesParam(params, "slides")
	if !ok {
		return failure(failf("slides parameter must be an array of {title, body} objects"))
	}

	path, err := p.resolver.Resolve(filename, office.Presentation)
	if err != nil {
		return failureFrom(deckLabel, "update", err)
	}

	count, err := office.AppendSlides(path, slides)
	if err != nil {
		return failureFrom(deckLabel, "update", err)
	}

	return success(map[string]interface{}{
		"message": okf("Updated PowerPoint %s with %d new slides.", filename, count),
		"path":    path,
		"count":   count,
	})
}

func (p *Presentation) delete(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := p.resolver.Resolve(filename, office.Presentation)
	if err != nil {
		return failureFrom(deckLabel, "delete", err)
	}

	if err := office.DeletePresentation(path); err != nil {
		return failureFrom(deckLabel, "delete", err)
	}

	return success(map[string]interface{}{
		"message": deletedf("Deleted PowerPoint: %s", path),
		"path":    path,
	})
}
