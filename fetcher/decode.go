package fetcher

import (
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/qyinm/staffdir/types"
)

// ErrUnexpectedShape is returned by ParseFallback when the document is valid
// JSON but neither {"employees": [...]} nor a bare array.
var ErrUnexpectedShape = errors.New("unexpected data format")

// ParseEmployees decodes a JSON array of employees. The primary endpoint is
// trusted to return exactly that, so no unwrapping is attempted.
func ParseEmployees(reader io.Reader) ([]types.Employee, error) {
	var employees []types.Employee
	if err := json.NewDecoder(reader).Decode(&employees); err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []types.Employee{}
	}
	return employees, nil
}

// ParseFallback decodes the static fallback document. It accepts
// {"employees": [...]} or a bare array.
func ParseFallback(reader io.Reader) ([]types.Employee, error) {
	// UseNumber keeps long numeric ids and phones exact when re-encoded.
	dec := json.NewDecoder(reader)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	var list []any
	switch v := doc.(type) {
	case map[string]any:
		inner, ok := v["employees"].([]any)
		if !ok {
			return nil, ErrUnexpectedShape
		}
		list = inner
	case []any:
		list = v
	default:
		return nil, ErrUnexpectedShape
	}

	employees := make([]types.Employee, 0, len(list))
	for i, item := range list {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		var e types.Employee
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}
