package office

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CreateSpreadsheet writes a fresh workbook at path whose active sheet is
// named sheetName (DefaultSheetName when blank) and seeded with rows.
func CreateSpreadsheet(path, sheetName string, rows [][]string) error {
	if guard := ensureAbsent(path); guard != nil {
		return guard
	}

	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	wb := excelize.NewFile()
	defer wb.Close()

	if sheetName != DefaultSheetName {
		if err := wb.SetSheetName(DefaultSheetName, sheetName); err != nil {
			return unclassified(path, err)
		}
	}
	if err := appendRows(wb, sheetName, rows, 0); err != nil {
		return unclassified(path, err)
	}
	if err := wb.SaveAs(path); err != nil {
		return unclassified(path, err)
	}
	return nil
}

// ReadSpreadsheet renders the named sheet (active sheet when blank) as
// comma-joined cells and newline-joined rows, or the empty-sheet marker.
// Cell values arrive text-coerced.
func ReadSpreadsheet(path, sheetName string) (string, error) {
	if guard := ensureExists(path); guard != nil {
		return "", guard
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return "", Diagnose(path, Spreadsheet.ManifestEntry(), err)
	}
	defer wb.Close()

	if sheetName == "" {
		sheetName = wb.GetSheetName(wb.GetActiveSheetIndex())
	}

	rows, err := wb.GetRows(sheetName)
	if err != nil {
		return "", &OpError{Kind: KindNotFound, Path: path, Detail: fmt.Sprintf("sheet %q not found in %s", sheetName, path), Err: err}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ", "))
	}
	text := strings.Join(lines, "\n")
	if text == "" {
		return EmptySheetText, nil
	}
	return text, nil
}

// AppendSpreadsheetRows appends rows to the named sheet, creating the sheet
// first when it does not exist. Existing rows are never truncated. Returns
// the number of rows appended.
func AppendSpreadsheetRows(path, sheetName string, rows [][]string) (int, error) {
	if guard := ensureExists(path); guard != nil {
		return 0, guard
	}
	if sheetName == "" {
		return 0, invalidName(sheetName, "sheet name is empty")
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return 0, Diagnose(path, Spreadsheet.ManifestEntry(), err)
	}
	defer wb.Close()

	// The one adapter operation that may silently create a substructure.
	idx, err := wb.GetSheetIndex(sheetName)
	if err != nil {
		return 0, unclassified(path, err)
	}
	if idx < 0 {
		if _, err := wb.NewSheet(sheetName); err != nil {
			return 0, unclassified(path, err)
		}
	}

	existing, err := wb.GetRows(sheetName)
	if err != nil {
		return 0, unclassified(path, err)
	}
	if err := appendRows(wb, sheetName, rows, len(existing)); err != nil {
		return 0, unclassified(path, err)
	}

	if err := wb.Save(); err != nil {
		return 0, unclassified(path, err)
	}
	return len(rows), nil
}

// DeleteSpreadsheet removes the workbook file.
func DeleteSpreadsheet(path string) error {
	return remove(path)
}

func appendRows(wb *excelize.File, sheetName string, rows [][]string, offset int) error {
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis, err := excelize.CoordinatesToCellName(1, offset+i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheetName, axis, &cells); err != nil {
			return err
		}
	}
	return nil
}
