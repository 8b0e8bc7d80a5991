package providers

import (
	"fmt"
	"strings"

	"github.com/officegate/officegate/internal/office"
)

// Outcome markers. Every status message begins with exactly one of these.
const (
	markerOK      = "✅"
	markerFail    = "❌"
	markerDeleted = "🗑️"
)

func okf(format string, args ...interface{}) string {
	return markerOK + " " + fmt.Sprintf(format, args...)
}

func failf(format string, args ...interface{}) string {
	return markerFail + " " + fmt.Sprintf(format, args...)
}

func deletedf(format string, args ...interface{}) string {
	return markerDeleted + " " + fmt.Sprintf(format, args...)
}

func stringify(v interface{}) string {
	return fmt.Sprintf("%v", v)
}

// renderFailure turns a classified operation error into the status message
// for a format label ("Word document", "Excel file", "PowerPoint") and an
// operation verb ("create", "read", "update", "delete").
func renderFailure(label, op string, err error) string {
	oe, ok := err.(*office.OpError)
	if !ok {
		return failf("Failed to %s %s: %v", op, label, err)
	}

	switch oe.Kind {
	case office.KindAlreadyExists:
		return failf("File already exists: %s", oe.Path)
	case office.KindNotFound:
		if strings.Contains(oe.Detail, "sheet") {
			return failf("%s", capitalize(oe.Detail))
		}
		return failf("File not found: %s", oe.Path)
	case office.KindInvalidName:
		return failf("%s", capitalize(oe.Detail))
	case office.KindWrongSchema:
		return failf("Not a %s. Contains: %s", label, strings.Join(oe.Entries, ", "))
	case office.KindNotAPackage:
		return failf("%s", capitalize(oe.Detail))
	default:
		return failf("Failed to %s %s: %s", op, label, oe.Detail)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
