// Package export writes the wide-mode table of a directory snapshot as a
// static HTML page or as JSON rows.
package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/qyinm/staffdir/directory"
	"github.com/qyinm/staffdir/types"
)

// Format is an output format accepted by Write.
type Format string

const (
	HTML Format = "html"
	JSON Format = "json"
)

// ParseFormat accepts "html" or "json", case-insensitively.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case HTML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q; expected html|json", raw)
	}
}

// Snapshot is a filtered directory ready to write.
type Snapshot struct {
	Query       string          `json:"query"`
	GeneratedAt time.Time       `json:"generated_at"`
	Total       int             `json:"total"`
	Rows        []directory.Row `json:"rows"`
}

// NewSnapshot filters employees by query and formats every row.
func NewSnapshot(employees []types.Employee, query, assetDir string, now time.Time) Snapshot {
	rows := directory.BuildRows(directory.Filter(employees, query), assetDir)
	return Snapshot{
		Query:       query,
		GeneratedAt: now,
		Total:       len(rows),
		Rows:        rows,
	}
}

// Write renders s to w in the given format.
func Write(w io.Writer, f Format, s Snapshot) error {
	switch f {
	case HTML:
		return pageTemplate.Execute(w, s)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Staff Directory</title>
</head>
<body>
<h1>Staff Directory</h1>
{{- if .Query}}
<p class="query">Filtered by "{{.Query}}"</p>
{{- end}}
{{- if .Rows}}
<table class="employees">
<thead>
<tr><th>Photo</th><th>Name</th><th>Job</th><th>Admission date</th><th>Phone</th></tr>
</thead>
<tbody>
{{- range .Rows}}
<tr data-id="{{.ID}}">
<td><img src="{{.Photo}}" alt="Photo of {{.Name}}" class="employee-photo"></td>
<td>{{.Name}}</td>
<td>{{.Job}}</td>
<td>{{.AdmissionDate}}</td>
<td>{{.Phone}}</td>
</tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p class="no-results">No employees found.</p>
{{- end}}
<footer>Generated {{.GeneratedAt.Format "02/01/2006 15:04"}}</footer>
</body>
</html>
`))
