package providers

import (
	"github.com/officegate/officegate/internal/office"
	"github.com/officegate/officegate/internal/types"
)

// success builds a successful result. data must include a "message" entry
// rendered by report.go.
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// failure builds a failed result without raising: msg is both the status
// message and the error field.
func failure(msg string) (*types.Result, error) {
	return &types.Result{
		Success: false,
		Data:    map[string]interface{}{"message": msg},
		Error:   &msg,
	}, nil
}

// failureFrom renders a taxonomy-classified failure for the given format
// label and operation.
func failureFrom(label, op string, err error) (*types.Result, error) {
	msg := renderFailure(label, op, err)
	return &types.Result{
		Success: false,
		Data: map[string]interface{}{
			"message": msg,
			"kind":    string(office.KindOf(err)),
		},
		Error: &msg,
	}, nil
}

// strParam extracts a required string parameter.
func strParam(params map[string]interface{}, name string) (string, bool) {
	v, ok := params[name].(string)
	return v, ok && v != ""
}

// optStrParam extracts an optional string parameter, "" when absent.
func optStrParam(params map[string]interface{}, name string) string {
	v, _ := params[name].(string)
	return v
}

// linesParam coerces a JSON array parameter to a string slice.
func linesParam(params map[string]interface{}, name string) ([]string, bool) {
	raw, ok := params[name].([]interface{})
	if !ok {
		return nil, false
	}
	lines := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		lines = append(lines, s)
	}
	return lines, true
}

// rowsParam coerces a JSON array-of-arrays parameter to rows of text cells.
// Scalar cells are accepted and text-coerced the way sheet reads are.
func rowsParam(params map[string]interface{}, name string) ([][]string, bool) {
	raw, ok := params[name].([]interface{})
	if !ok {
		return nil, false
	}
	rows := make([][]string, 0, len(raw))
	for _, item := range raw {
		cells, ok := item.([]interface{})
		if !ok {
			return nil, false
		}
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, coerceCell(cell))
		}
		rows = append(rows, row)
	}
	return rows, true
}

func coerceCell(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case nil:
		return ""
	default:
		return stringify(c)
	}
}

// slidesParam coerces a JSON array of {title, body} objects. The legacy
// "content" key is accepted as an alias for "body".
func slidesParam(params map[string]interface{}, name string) ([]office.SlideContent, bool) {
	raw, ok := params[name].([]interface{})
	if !ok {
		return nil, false
	}
	slides := make([]office.SlideContent, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}
		slide := office.SlideContent{
			Title: optStrParam(entry, "title"),
			Body:  optStrParam(entry, "body"),
		}
		if slide.Body == "" {
			slide.Body = optStrParam(entry, "content")
		}
		slides = append(slides, slide)
	}
	return slides, true
}
