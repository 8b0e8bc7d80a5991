package providers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officegate/officegate/internal/office"
)

func newPresentationProvider(t *testing.T) *Presentation {
	t.Helper()
	return NewPresentation(office.NewResolver(t.TempDir()))
}

func TestPresentationDefinition(t *testing.T) {
	def := newPresentationProvider(t).Definition()

	assert.Equal(t, "presentation", def.ID)

	toolIDs := make(map[string]bool)
	for _, tool := range def.Tools {
		toolIDs[tool.ID] = true
	}
	assert.True(t, toolIDs["presentation.create"])
	assert.True(t, toolIDs["presentation.read"])
	assert.True(t, toolIDs["presentation.update"])
	assert.True(t, toolIDs["presentation.delete"])
}

func TestPresentationLifecycle(t *testing.T) {
	p := newPresentationProvider(t)

	result := exec(t, p, "presentation.create", map[string]interface{}{
		"filename": "pitch",
		"title":    "Kickoff",
		"content":  "Agenda",
	})
	require.True(t, result.Success)
	assert.Contains(t, result.Message(), "pitch.pptx")

	result = exec(t, p, "presentation.read", map[string]interface{}{"filename": "pitch"})
	require.True(t, result.Success)
	assert.Equal(t, "Slide 1:\nKickoff\nAgenda", result.Message())

	result = exec(t, p, "presentation.update", map[string]interface{}{
		"filename": "pitch",
		"slides": []interface{}{
			map[string]interface{}{"title": "Roadmap", "body": "Q3 plans"},
			map[string]interface{}{"title": "Questions", "content": "Ask away"},
		},
	})
	require.True(t, result.Success)
	assert.Contains(t, result.Message(), "2 new slides")

	result = exec(t, p, "presentation.read", map[string]interface{}{"filename": "pitch"})
	require.True(t, result.Success)
	assert.Contains(t, result.Message(), "Slide 2:\nRoadmap\nQ3 plans")
	// "content" is accepted as an alias for "body".
	assert.Contains(t, result.Message(), "Slide 3:\nQuestions\nAsk away")

	result = exec(t, p, "presentation.delete", map[string]interface{}{"filename": "pitch"})
	require.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Message(), "🗑️"))
}

func TestPresentationDefaultTitle(t *testing.T) {
	p := newPresentationProvider(t)

	exec(t, p, "presentation.create", map[string]interface{}{"filename": "untitled"})

	result := exec(t, p, "presentation.read", map[string]interface{}{"filename": "untitled"})
	require.True(t, result.Success)
	assert.Equal(t, "Slide 1:\nNew Presentation", result.Message())
}

func TestPresentationReadMissing(t *testing.T) {
	p := newPresentationProvider(t)

	result := exec(t, p, "presentation.read", map[string]interface{}{"filename": "ghost"})
	require.False(t, result.Success)
	assert.Contains(t, result.Message(), "File not found")
	assert.Equal(t, string(office.KindNotFound), result.Data["kind"])
}

func TestPresentationBadSlides(t *testing.T) {
	p := newPresentationProvider(t)

	exec(t, p, "presentation.create", map[string]interface{}{"filename": "pitch"})

	result := exec(t, p, "presentation.update", map[string]interface{}{
		"filename": "pitch",
		"slides":   []interface{}{"not an object"},
	})
	require.False(t, result.Success)
	assert.Contains(t, result.Message(), "slides")
}
