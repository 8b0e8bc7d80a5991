package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/flate"
)

const (
	nsDrawing    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRels       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresent    = "http://schemas.openxmlformats.org/presentationml/2006/main"
	relTypeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
)

// SaveAs writes the presentation package to path, replacing any existing
// file. The whole package is rewritten on every save.
func (p *Presentation) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	parts := map[string]string{
		"[Content_Types].xml":             p.contentTypesXML(),
		"_rels/.rels":                     rootRelsXML(),
		"ppt/presentation.xml":            p.presentationXML(),
		"ppt/_rels/presentation.xml.rels": p.presentationRelsXML(),
	}
	for i := range p.Slides {
		parts[slidePartName(i+1)] = slideXMLBody(p.Slides[i])
	}

	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", name, err)
		}
		if _, err := io.WriteString(w, body); err != nil {
			return fmt.Errorf("write part %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize package: %w", err)
	}
	return f.Close()
}

func slidePartName(n int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", n)
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func (p *Presentation) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	fmt.Fprintf(&b, `<Override PartName="/ppt/presentation.xml" ContentType="%s"/>`, ctPresentation)
	for i := range p.Slides {
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="%s"/>`, slidePartName(i+1), ctSlide)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func rootRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="%s" Target="ppt/presentation.xml"/>`, relTypeDoc)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRels, nsPresent)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.Slides {
		// Slide ids must be >= 256 per the schema.
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+1)
	}
	b.WriteString(`</p:sldIdLst>`)
	b.WriteString(`<p:sldSz cx="9144000" cy="6858000"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i := range p.Slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, i+1, relTypeSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideXMLBody(s Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRels, nsPresent)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr/>`)
	writePlaceholder(&b, 2, "Title 1", `<p:ph type="title"/>`, s.Title)
	writePlaceholder(&b, 3, "Content 2", `<p:ph type="body" idx="1"/>`, s.Body)
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func writePlaceholder(b *strings.Builder, id int, name, ph, text string) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>%s</p:nvPr></p:nvSpPr><p:spPr/>`, id, name, ph)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(`<a:p>`)
		if line != "" {
			fmt.Fprintf(b, `<a:r><a:t>%s</a:t></a:r>`, escapeXML(line))
		}
		b.WriteString(`</a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
