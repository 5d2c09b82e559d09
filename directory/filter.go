// Package directory holds the employee directory state: the record
// collection, the filtered view, the phase and viewport class, per-card
// expansion, and the view-model the UI draws from.
package directory

import (
	"strings"

	"github.com/qyinm/staffdir/types"
)

// Filter returns the employees whose name, job or raw phone contains query,
// ignoring case. The result is always a new slice in source order; an empty
// query returns a copy of every record. The query is not trimmed.
func Filter(employees []types.Employee, query string) []types.Employee {
	if query == "" {
		out := make([]types.Employee, len(employees))
		copy(out, employees)
		return out
	}

	q := strings.ToLower(query)
	out := make([]types.Employee, 0, len(employees))
	for _, e := range employees {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e types.Employee, q string) bool {
	return strings.Contains(strings.ToLower(e.Name()), q) ||
		strings.Contains(strings.ToLower(e.Job()), q) ||
		strings.Contains(strings.ToLower(e.Phone()), q)
}

// SelectPhase picks Empty or Populated for a resolved collection.
func SelectPhase(filtered []types.Employee) types.Phase {
	if len(filtered) == 0 {
		return types.Empty
	}
	return types.Populated
}
