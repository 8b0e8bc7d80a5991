package office

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadsheetCreateReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")

	rows := [][]string{
		{"item", "cost"},
		{"desk", "120"},
	}
	require.NoError(t, CreateSpreadsheet(path, "", rows))

	text, err := ReadSpreadsheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, "item, cost\ndesk, 120", text)
}

func TestSpreadsheetCreateEmptyRendersMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.xlsx")

	require.NoError(t, CreateSpreadsheet(path, "", nil))

	text, err := ReadSpreadsheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, EmptySheetText, text)
}

func TestSpreadsheetCustomSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")

	require.NoError(t, CreateSpreadsheet(path, "Q3", [][]string{{"a"}}))

	// The named sheet holds the data and is the active sheet.
	text, err := ReadSpreadsheet(path, "Q3")
	require.NoError(t, err)
	assert.Equal(t, "a", text)

	text, err = ReadSpreadsheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, "a", text)
}

func TestSpreadsheetReadMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, CreateSpreadsheet(path, "", nil))

	_, err := ReadSpreadsheet(path, "NoSuchSheet")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), "sheet")
}

func TestSpreadsheetAppendRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, CreateSpreadsheet(path, "", [][]string{{"header"}}))

	count, err := AppendSpreadsheetRows(path, DefaultSheetName, [][]string{{"one"}, {"two"}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	text, err := ReadSpreadsheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, "header\none\ntwo", text)
}

func TestSpreadsheetAppendCreatesMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, CreateSpreadsheet(path, "", nil))

	count, err := AppendSpreadsheetRows(path, "Extras", [][]string{{"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	text, err := ReadSpreadsheet(path, "Extras")
	require.NoError(t, err)
	assert.Equal(t, "x, y", text)
}

func TestSpreadsheetCreateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, CreateSpreadsheet(path, "", nil))

	err := CreateSpreadsheet(path, "", nil)
	require.Error(t, err)
	assert.Equal(t, KindAlreadyExists, KindOf(err))
}

func TestSpreadsheetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, CreateSpreadsheet(path, "", nil))

	require.NoError(t, DeleteSpreadsheet(path))

	err := DeleteSpreadsheet(path)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSpreadsheetReadRejectsNonPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.xlsx")
	require.NoError(t, writeTextFile(path, "not a workbook at all"))

	_, err := ReadSpreadsheet(path, "")
	require.Error(t, err)
	assert.Equal(t, KindNotAPackage, KindOf(err))
}
