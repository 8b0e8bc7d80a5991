package providers

import (
	"context"

	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/types"
)

const sheetLabel = "Excel file"

// Spreadsheet provides workbook tools
type Spreadsheet struct {
	resolver *office.Resolver
}

// NewSpreadsheet creates a spreadsheet provider rooted at the resolver's
// base directory
func NewSpreadsheet(resolver *office.Resolver) *Spreadsheet {
	return &Spreadsheet{resolver: resolver}
}

// Definition returns service metadata
func (s *Spreadsheet) Definition() types.Service {
	return types.Service{
		ID:          "spreadsheet",
		Name:        "Spreadsheets",
		Description: "Create, read, append rows to and delete Excel (.xlsx) workbooks",
		Category:    types.CategoryDocuments,
		Capabilities: []string{
			"create",
			"read",
			"update",
			"delete",
		},
		Tools: []types.Tool{
			{
				ID:          "spreadsheet.create",
				Name:        "Create Workbook",
				Description: "Create a new workbook with a named active sheet and optional seed rows",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Workbook name, .xlsx appended if absent", Required: true},
					{Name: "sheet_name", Type: "string", Description: "Active sheet name, defaults to Sheet1", Required: false},
					{Name: "data", Type: "array", Description: "Rows of cells to seed the sheet with", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "spreadsheet.read",
				Name:        "Read Sheet",
				Description: "Read a sheet as comma-joined cells, one line per row",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Workbook name", Required: true},
					{Name: "sheet_name", Type: "string", Description: "Sheet to read, defaults to the active sheet", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "spreadsheet.update",
				Name:        "Append Rows",
				Description: "Append rows to a sheet, creating the sheet when absent; existing rows untouched",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Workbook name", Required: true},
					{Name: "sheet_name", Type: "string", Description: "Target sheet", Required: true},
					{Name: "data", Type: "array", Description: "Rows of cells to append", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "spreadsheet.delete",
				Name:        "Delete Workbook",
				Description: "Remove a workbook from the library",
				Parameters: []types.Parameter{
					{Name: "filename", Type: "string", Description: "Workbook name", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute runs a spreadsheet operation
func (s *Spreadsheet) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "spreadsheet.create":
		return s.create(params)
	case "spreadsheet.read":
		return s.read(params)
	case "spreadsheet.update":
		return s.update(params)
	case "spreadsheet.delete":
		return s.delete(params)
	default:
		return failure(failf("unknown tool: %s", toolID))
	}
}

func (s *Spreadsheet) create(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	var rows [][]string
	if _, present := params["data"]; present {
		coerced, ok := rowsParam(params, "data")
		if !ok {
			return failure(failf("data parameter must be an array of rows"))
		}
		rows = coerced
	}

	path, err := s.resolver.Resolve(filename, office.Spreadsheet)
	if err != nil {
		return failureFrom(sheetLabel, "create", err)
	}

	if err := office.CreateSpreadsheet(path, optStrParam(params, "sheet_name"), rows); err != nil {
		return failureFrom(sheetLabel, "create", err)
	}

	return success(map[string]interface{}{
		"message": okf("Created Excel file: %s", path),
		"path":    path,
	})
}

func (s *Spreadsheet) read(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := s.resolver.Resolve(filename, office.Spreadsheet)
	if err != nil {
		return failureFrom(sheetLabel, "read", err)
	}

	text, err := office.ReadSpreadsheet(path, optStrParam(params, "sheet_name"))
	if err != nil {
		return failureFrom(sheetLabel, "read", err)
	}

	return success(map[string]interface{}{
		"message": text,
		"path":    path,
	})
}

func (s *Spreadsheet) update(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}
	sheetName, ok := strParam(params, "sheet_name")
	if !ok {
		return failure(failf("sheet_name parameter required"))
	}
	rows, ok := rowsParam(params, "data")
	if !ok {
		return failure(failf("data parameter must be an array of rows"))
	}

	path, err := s.resolver.Resolve(filename, office.Spreadsheet)
	if err != nil {
		return failureFrom(sheetLabel, "update", err)
	}

	count, err := office.AppendSpreadsheetRows(path, sheetName, rows)
	if err != nil {
		return failureFrom(sheetLabel, "update", err)
	}

	return success(map[string]interface{}{
		"message": okf("Updated Excel file %s with %d rows.", filename, count),
		"path":    path,
		"count":   count,
	})
}

func (s *Spreadsheet) delete(params map[string]interface{}) (*types.Result, error) {
	filename, ok := strParam(params, "filename")
	if !ok {
		return failure(failf("filename parameter required"))
	}

	path, err := s.resolver.Resolve(filename, office.Spreadsheet)
	if err != nil {
		return failureFrom(sheetLabel, "delete", err)
	}

	if err := office.DeleteSpreadsheet(path); err != nil {
		return failureFrom(sheetLabel, "delete", err)
	}

	return success(map[string]interface{}{
		"message": deletedf("Deleted Excel file: %s", path),
		"path":    path,
	})
}
