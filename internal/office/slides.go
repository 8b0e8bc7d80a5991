package office

import (
	"fmt"
	"strings"

	"github.com/officegate/officegate/internal/office/pptx"
)

// SlideContent is one slide's payload for create and update operations.
type SlideContent struct {
	Title string
	Body  string
}

// CreatePresentation writes a fresh deck at path holding a single title
// slide.
func CreatePresentation(path, title, body string) error {
	if guard := ensureAbsent(path); guard != nil {
		return guard
	}

	deck := pptx.New()
	deck.AddSlide(title, body)
	if err := deck.SaveAs(path); err != nil {
		return unclassified(path, err)
	}
	return nil
}

// ReadPresentation renders the deck as numbered per-slide text blocks joined
// by blank lines, or the empty-presentation marker.
func ReadPresentation(path string) (string, error) {
	if guard := ensureExists(path); guard != nil {
		return "", guard
	}

	deck, err := pptx.Open(path)
	if err != nil {
		return "", Diagnose(path, Presentation.ManifestEntry(), err)
	}

	blocks := make([]string, 0, len(deck.Slides))
	for i, slide := range deck.Slides {
		blocks = append(blocks, fmt.Sprintf("Slide %d:\n%s", i+1, strings.Join(slide.Texts(), "\n")))
	}
	text := strings.Join(blocks, "\n\n")
	if len(deck.Slides) == 0 {
		return EmptyDeckText, nil
	}
	return text, nil
}

// AppendSlides appends one slide per entry and re-persists the whole deck.
// Slide order is append-only; existing slides are never replaced. Returns
// the number of slides appended.
func AppendSlides(path string, slides []SlideContent) (int, error) {
	if guard := ensureExists(path); guard != nil {
		return 0, guard
	}

	deck, err := pptx.Open(path)
	if err != nil {
		return 0, Diagnose(path, Presentation.ManifestEntry(), err)
	}

	for _, s := range slides {
		deck.AddSlide(s.Title, s.Body)
	}
	if err := deck.SaveAs(path); err != nil {
		return 0, unclassified(path, err)
	}
	return len(slides), nil
}

// DeletePresentation removes the deck file.
func DeletePresentation(path string) error {
	return remove(path)
}
