package pptx

// Slide is one slide's content model: a title placeholder, a body
// placeholder, and any further text bodies found in foreign decks.
type Slide struct {
	Title string
	Body  string
	Extra []string
}

// Texts returns the slide's non-empty text bodies in placeholder order.
// This is the capability query renderers use: shapes without text never
// appear here.
func (s Slide) Texts() []string {
	texts := make([]string, 0, 2+len(s.Extra))
	if s.Title != "" {
		texts = append(texts, s.Title)
	}
	if s.Body != "" {
		texts = append(texts, s.Body)
	}
	for _, t := range s.Extra {
		if t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}

// Presentation is an ordered sequence of slides.
type Presentation struct {
	Slides []Slide
}

// New creates an empty presentation.
func New() *Presentation {
	return &Presentation{}
}

// AddSlide appends a slide with the given title and body placeholder text.
func (p *Presentation) AddSlide(title, body string) {
	p.Slides = append(p.Slides, Slide{Title: title, Body: body})
}
