package office

import "fmt"

// Kind classifies document operation failures so callers can tell
// "try a different name" apart from "file is damaged or wrong type"
// apart from "unexpected environment failure".
type Kind string

const (
	KindAlreadyExists Kind = "already_exists"
	KindNotFound      Kind = "not_found"
	KindInvalidName   Kind = "invalid_name"
	KindNotAPackage   Kind = "not_a_package"
	KindWrongSchema   Kind = "wrong_schema"
	KindReadError     Kind = "read_error"
	KindUnclassified  Kind = "unclassified"
)

// OpError is the error variant of every adapter operation. Adapters never
// panic and never let a codec error escape without classification.
type OpError struct {
	Kind   Kind
	Path   string
	Detail string

	// Entries carries a bounded sample of archive entry names for
	// KindWrongSchema diagnoses.
	Entries []string

	Err error
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error, or KindUnclassified for
// anything that is not an *OpError.
func KindOf(err error) Kind {
	if oe, ok := err.(*OpError); ok {
		return oe.Kind
	}
	return KindUnclassified
}

func alreadyExists(path string) *OpError {
	return &OpError{Kind: KindAlreadyExists, Path: path, Detail: fmt.Sprintf("file already exists: %s", path)}
}

func notFound(path string) *OpError {
	return &OpError{Kind: KindNotFound, Path: path, Detail: fmt.Sprintf("file not found: %s", path)}
}

func invalidName(name, reason string) *OpError {
	return &OpError{Kind: KindInvalidName, Path: name, Detail: fmt.Sprintf("invalid document name %q: %s", name, reason)}
}

func unclassified(path string, err error) *OpError {
	return &OpError{Kind: KindUnclassified, Path: path, Detail: err.Error(), Err: err}
}
