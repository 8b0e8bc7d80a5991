package office

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func writeTextFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestDiagnoseNotAPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.docx")
	require.NoError(t, os.WriteFile(path, []byte("just plain text, not a zip"), 0o644))

	oe := Diagnose(path, Word.ManifestEntry(), errors.New("parse failed"))

	assert.Equal(t, KindNotAPackage, oe.Kind)
	assert.Contains(t, oe.Detail, "not an office package")
}

func TestDiagnoseWrongSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.docx")
	writeZip(t, path, map[string]string{
		"xl/workbook.xml":     "<workbook/>",
		"[Content_Types].xml": "<Types/>",
	})

	oe := Diagnose(path, Word.ManifestEntry(), errors.New("parse failed"))

	assert.Equal(t, KindWrongSchema, oe.Kind)
	assert.Contains(t, oe.Entries, "xl/workbook.xml")
	assert.Contains(t, oe.Detail, "word/document.xml")
}

func TestDiagnoseWrongSchemaBoundsEntrySample(t *testing.T) {
	entries := make(map[string]string)
	for i := 0; i < 25; i++ {
		entries[filepath.Join("parts", string(rune('a'+i))+".xml")] = "<x/>"
	}
	path := filepath.Join(t.TempDir(), "big.docx")
	writeZip(t, path, entries)

	oe := Diagnose(path, Word.ManifestEntry(), errors.New("parse failed"))

	assert.Equal(t, KindWrongSchema, oe.Kind)
	assert.Len(t, oe.Entries, entrySampleSize)
}

func TestDiagnoseReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half.docx")
	writeZip(t, path, map[string]string{
		"word/document.xml": "<truncated",
	})

	parseErr := errors.New("xml truncated")
	oe := Diagnose(path, Word.ManifestEntry(), parseErr)

	assert.Equal(t, KindReadError, oe.Kind)
	assert.ErrorIs(t, oe, parseErr)
}
