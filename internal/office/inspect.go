package office

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// entrySampleSize bounds how many archive entry names a WrongSchema
// diagnosis surfaces.
const entrySampleSize = 10

// Diagnose classifies a read failure by inspecting the file as a generic
// archive. Every supported format is a zip-based package, so three outcomes
// cover the space, in priority order:
//
//  1. not openable as an archive at all -> KindNotAPackage
//  2. archive without the format's manifest entry -> KindWrongSchema
//  3. manifest present but parsing still failed -> KindReadError
//
// parseErr is the original codec error and is preserved for the third case.
func Diagnose(path, manifestEntry string, parseErr error) *OpError {
	zr, err := zip.OpenReader(path)
	if err != nil {
		detail := fmt.Sprintf("not an office package (possibly corrupted): %s", path)
		if mt, merr := mimetype.DetectFile(path); merr == nil {
			detail = fmt.Sprintf("not an office package (detected %s, possibly corrupted): %s", mt.String(), path)
		}
		return &OpError{Kind: KindNotAPackage, Path: path, Detail: detail, Err: parseErr}
	}
	defer zr.Close()

	entries := make([]string, 0, entrySampleSize)
	found := false
	for _, f := range zr.File {
		if f.Name == manifestEntry {
			found = true
		}
		if len(entries) < entrySampleSize {
			entries = append(entries, f.Name)
		}
	}

	if !found {
		return &OpError{
			Kind:    KindWrongSchema,
			Path:    path,
			Detail:  fmt.Sprintf("package is missing %s; contains: %s", manifestEntry, strings.Join(entries, ", ")),
			Entries: entries,
			Err:     parseErr,
		}
	}

	return &OpError{
		Kind:   KindReadError,
		Path:   path,
		Detail: fmt.Sprintf("failed to parse package: %v", parseErr),
		Err:    parseErr,
	}
}
