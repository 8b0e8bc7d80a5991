package office

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationCreateReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.pptx")

	require.NoError(t, CreatePresentation(path, "Kickoff", "Agenda"))

	text, err := ReadPresentation(path)
	require.NoError(t, err)
	assert.Equal(t, "Slide 1:\nKickoff\nAgenda", text)
}

func TestPresentationAppendSlides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.pptx")
	require.NoError(t, CreatePresentation(path, "Kickoff", ""))

	count, err := AppendSlides(path, []SlideContent{
		{Title: "Roadmap", Body: "Q3 plans"},
		{Title: "Questions", Body: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	text, err := ReadPresentation(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Slide 1:\nKickoff")
	assert.Contains(t, text, "Slide 2:\nRoadmap\nQ3 plans")
	assert.Contains(t, text, "Slide 3:\nQuestions")
}

func TestPresentationCreateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.pptx")
	require.NoError(t, CreatePresentation(path, "Kickoff", ""))

	err := CreatePresentation(path, "Again", "")
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestPresentationReadMissing(t *testing.T) {
	_, err := ReadPresentation(filepath.Join(t.TempDir(), "ghost.pptx"))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestPresentationDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.pptx")
	require.NoError(t, CreatePresentation(path, "Kickoff", ""))

	require.NoError(t, DeletePresentation(path))

	err := DeletePresentation(path)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestPresentationReadRejectsForeignPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pptx")
	writeZip(t, path, map[string]string{"word/document.xml": "<document/>"})

	_, err := ReadPresentation(path)
	require.Error(t, err)
	assert.Equal(t, KindWrongSchema, KindOf(err))
}
