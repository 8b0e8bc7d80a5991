package office

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// CreateWord writes a fresh word-processing package at path holding content
// as its single opening paragraph. Blank content is replaced with the
// placeholder paragraph so the document is never structurally empty.
func CreateWord(path, content string) error {
	if guard := ensureAbsent(path); guard != nil {
		return guard
	}

	if strings.TrimSpace(content) == "" {
		content = PlaceholderParagraph
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(content)

	if err := saveWord(doc, path); err != nil {
		return unclassified(path, err)
	}
	return nil
}

// ReadWord renders the document's paragraphs joined with newlines, or the
// empty-document marker when no paragraph carries text.
func ReadWord(path string) (string, error) {
	if guard := ensureExists(path); guard != nil {
		return "", guard
	}

	doc, err := openWord(path)
	if err != nil {
		return "", Diagnose(path, Word.ManifestEntry(), err)
	}

	text := strings.Join(wordParagraphs(doc), "\n")
	if text == "" {
		return EmptyDocumentText, nil
	}
	return text, nil
}

// AppendWord appends each line as a new paragraph and re-persists the whole
// package. Existing paragraphs are never touched. Returns the number of
// paragraphs appended.
func AppendWord(path string, lines []string) (int, error) {
	if guard := ensureExists(path); guard != nil {
		return 0, guard
	}

	doc, err := openWord(path)
	if err != nil {
		return 0, Diagnose(path, Word.ManifestEntry(), err)
	}

	for _, line := range lines {
		doc.AddParagraph().AddText(line)
	}

	if err := saveWord(doc, path); err != nil {
		return 0, unclassified(path, err)
	}
	return len(lines), nil
}

// DeleteWord removes the document file.
func DeleteWord(path string) error {
	return remove(path)
}

// openWord loads the whole package into memory before parsing: go-docx
// reads parts lazily from the reader it was parsed from, so parsing straight
// off a file handle would leave WriteTo reading from a closed (or truncated)
// file during re-save.
func openWord(path string) (*docx.Docx, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// go-docx tolerates archives without the document part and parses them
	// to an empty doc; check for it ourselves so foreign packages are
	// classified instead of read as empty.
	if err := requirePart(data, Word.ManifestEntry()); err != nil {
		return nil, err
	}
	return docx.Parse(bytes.NewReader(data), int64(len(data)))
}

func requirePart(data []byte, name string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	for _, f := range zr.File {
		if f.Name == name {
			return nil
		}
	}
	return fmt.Errorf("package is missing %s", name)
}

func saveWord(doc *docx.Docx, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// wordParagraphs extracts the ordered paragraph texts from a parsed
// document. Only text runs contribute; drawings, tabs and bookmarks are
// skipped.
func wordParagraphs(doc *docx.Docx) []string {
	var paras []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, child := range para.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if t, ok := rc.(*docx.Text); ok {
					sb.WriteString(t.Text)
				}
			}
		}
		paras = append(paras, sb.String())
	}

	// A document whose every paragraph is blank renders as empty.
	joined := strings.Join(paras, "")
	if joined == "" {
		return nil
	}
	return paras
}
