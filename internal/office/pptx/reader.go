package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// Open reads a presentation package from path. Slide order follows the
// presentation part's slide list; packages without a readable slide list
// fall back to lexical slide-part order.
func Open(p string) (*Presentation, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open package: %w", err)
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	if parts["ppt/presentation.xml"] == nil {
		return nil, fmt.Errorf("package is missing ppt/presentation.xml")
	}

	names, err := slideOrder(parts)
	if err != nil {
		return nil, err
	}

	pres := New()
	for _, name := range names {
		f, ok := parts[name]
		if !ok {
			return nil, fmt.Errorf("package is missing slide part %s", name)
		}
		slide, err := parseSlide(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pres.Slides = append(pres.Slides, slide)
	}
	return pres, nil
}

// slideOrder resolves slide part names in presentation order via the slide
// list and the presentation part's relationships.
func slideOrder(parts map[string]*zip.File) ([]string, error) {
	rels, relErr := parseRels(parts["ppt/_rels/presentation.xml.rels"])
	ids, idErr := parseSlideList(parts["ppt/presentation.xml"])
	if relErr == nil && idErr == nil && len(ids) > 0 {
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			target, ok := rels[id]
			if !ok {
				return nil, fmt.Errorf("slide list references unknown relationship %s", id)
			}
			// Targets are relative to the ppt/ directory.
			names = append(names, path.Join("ppt", target))
		}
		return names, nil
	}

	// Foreign or stripped deck: collect slide parts lexically.
	var names []string
	for name := range parts {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return slidePartIndex(names[i]) < slidePartIndex(names[j])
	})
	return names, nil
}

func slidePartIndex(name string) int {
	var n int
	_, _ = fmt.Sscanf(path.Base(name), "slide%d.xml", &n)
	return n
}

type relationshipsXML struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

func parseRels(f *zip.File) (map[string]string, error) {
	if f == nil {
		return nil, fmt.Errorf("missing relationships part")
	}
	var doc relationshipsXML
	if err := decodePart(f, &doc); err != nil {
		return nil, err
	}
	rels := make(map[string]string, len(doc.Rels))
	for _, r := range doc.Rels {
		rels[r.ID] = r.Target
	}
	return rels, nil
}

type presentationXMLDoc struct {
	SlideIDs []struct {
		RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

func parseSlideList(f *zip.File) ([]string, error) {
	if f == nil {
		return nil, fmt.Errorf("missing presentation part")
	}
	var doc presentationXMLDoc
	if err := decodePart(f, &doc); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(doc.SlideIDs))
	for _, s := range doc.SlideIDs {
		ids = append(ids, s.RelID)
	}
	return ids, nil
}

type slideXMLDoc struct {
	Shapes []struct {
		NvSpPr struct {
			NvPr struct {
				Ph *struct {
					Type string `xml:"type,attr"`
				} `xml:"ph"`
			} `xml:"nvPr"`
		} `xml:"nvSpPr"`
		TxBody *struct {
			Paragraphs []struct {
				Runs []struct {
					Text string `xml:"t"`
				} `xml:"r"`
			} `xml:"p"`
		} `xml:"txBody"`
	} `xml:"cSld>spTree>sp"`
}

func parseSlide(f *zip.File) (Slide, error) {
	var doc slideXMLDoc
	if err := decodePart(f, &doc); err != nil {
		return Slide{}, err
	}

	var slide Slide
	for _, sp := range doc.Shapes {
		// Only text-bearing shapes participate in the content model.
		if sp.TxBody == nil {
			continue
		}
		var lines []string
		for _, para := range sp.TxBody.Paragraphs {
			var sb strings.Builder
			for _, run := range para.Runs {
				sb.WriteString(run.Text)
			}
			lines = append(lines, sb.String())
		}
		text := strings.TrimRight(strings.Join(lines, "\n"), "\n")

		phType := ""
		if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
			phType = ph.Type
		}
		switch {
		case phType == "title" || phType == "ctrTitle":
			slide.Title = text
		case slide.Body == "" && (phType == "body" || phType == "subTitle" || phType == ""):
			slide.Body = text
		default:
			slide.Extra = append(slide.Extra, text)
		}
	}
	return slide, nil
}

func decodePart(f *zip.File, v interface{}) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}
