package office

// Format identifies one of the supported office package formats.
type Format int

const (
	Word Format = iota
	Spreadsheet
	Presentation
)

// Ext returns the canonical file extension for the format, with leading dot.
func (f Format) Ext() string {
	switch f {
	case Word:
		return ".docx"
	case Spreadsheet:
		return ".xlsx"
	case Presentation:
		return ".pptx"
	default:
		return ""
	}
}

// ManifestEntry returns the package-internal part that identifies an archive
// as belonging to this format. The diagnostic inspector checks for it when a
// structured parse fails.
func (f Format) ManifestEntry() string {
	switch f {
	case Word:
		return "word/document.xml"
	case Spreadsheet:
		return "xl/workbook.xml"
	case Presentation:
		return "ppt/presentation.xml"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case Word:
		return "word"
	case Spreadsheet:
		return "spreadsheet"
	case Presentation:
		return "presentation"
	default:
		return "unknown"
	}
}
