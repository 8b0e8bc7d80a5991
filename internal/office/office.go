package office

import (
	"errors"
	"io/fs"
	"os"
)

// Placeholder and empty-model markers. Reads render the empty marker rather
// than an empty string so callers can tell "no content" from a silent
// failure; creates seed the placeholder when no content is supplied.
const (
	PlaceholderParagraph = "(new document)"
	EmptyDocumentText    = "(empty document)"
	EmptySheetText       = "(empty sheet)"
	EmptyDeckText        = "(empty presentation)"
)

// DefaultSheetName is the active sheet name used when a workbook is created
// without one.
const DefaultSheetName = "Sheet1"

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ensureAbsent guards create operations: the target must not exist.
func ensureAbsent(path string) *OpError {
	ok, err := exists(path)
	if err != nil {
		return unclassified(path, err)
	}
	if ok {
		return alreadyExists(path)
	}
	return nil
}

// ensureExists guards read, update and delete operations.
func ensureExists(path string) *OpError {
	ok, err := exists(path)
	if err != nil {
		return unclassified(path, err)
	}
	if !ok {
		return notFound(path)
	}
	return nil
}

// remove deletes the package file. Shared by all three adapters; there is no
// soft delete and no recovery.
func remove(path string) error {
	if guard := ensureExists(path); guard != nil {
		return guard
	}
	if err := os.Remove(path); err != nil {
		return unclassified(path, err)
	}
	return nil
}
