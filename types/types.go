package types

import (
	"bytes"
	"context"

	"github.com/segmentio/encoding/json"
)

// Phase is the UI phase of the directory. Exactly one is active at a time.
type Phase int

const (
	Loading Phase = iota
	Error
	Empty
	Populated
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// ViewportClass picks between the table and card presentations.
type ViewportClass int

const (
	Wide ViewportClass = iota
	Narrow
)

// String returns the string representation of the viewport class
func (c ViewportClass) String() string {
	switch c {
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Classify returns Narrow when width is at or below threshold.
func Classify(width, threshold int) ViewportClass {
	if width <= threshold {
		return Narrow
	}
	return Wide
}

// Employee is one directory entry.
type Employee struct {
	id            string
	name          string
	job           string
	admissionDate string
	phone         string
	image         string
}

// NewEmployee creates a new Employee with the given fields
func NewEmployee(id, name, job, admissionDate, phone, image string) Employee {
	return Employee{
		id:            id,
		name:          name,
		job:           job,
		admissionDate: admissionDate,
		phone:         phone,
		image:         image,
	}
}

// Getters for Employee fields
func (e Employee) ID() string            { return e.id }
func (e Employee) Name() string          { return e.name }
func (e Employee) Job() string           { return e.job }
func (e Employee) AdmissionDate() string { return e.admissionDate }
func (e Employee) Phone() string         { return e.phone }
func (e Employee) Image() string         { return e.image }

type employeeJSON struct {
	ID            scalar `json:"id"`
	Name          scalar `json:"name"`
	Job           scalar `json:"job"`
	AdmissionDate scalar `json:"admission_date"`
	Phone         scalar `json:"phone"`
	Image         scalar `json:"image"`
}

// UnmarshalJSON decodes the wire shape {id, name, job, admission_date, phone, image}.
// A field of an unexpected JSON type is kept as its text instead of failing
// the whole record.
func (e *Employee) UnmarshalJSON(data []byte) error {
	var w employeeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = NewEmployee(string(w.ID), string(w.Name), string(w.Job), string(w.AdmissionDate), string(w.Phone), string(w.Image))
	return nil
}

// MarshalJSON encodes the same wire shape UnmarshalJSON accepts.
func (e Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeJSON{
		ID:            scalar(e.id),
		Name:          scalar(e.name),
		Job:           scalar(e.job),
		AdmissionDate: scalar(e.admissionDate),
		Phone:         scalar(e.phone),
		Image:         scalar(e.image),
	})
}

// scalar accepts any JSON value as text: strings as is, numbers and
// booleans by their literal, null as "". json-server emits numeric ids and
// phones as often as strings.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalar(v)
	case data[0] == '{', data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*s = scalar(buf.String())
	default:
		// numbers, true and false
		*s = scalar(data)
	}
	return nil
}

func (s scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// EmployeeSource is the core abstraction for data access.
// The TUI, the MCP server and the export command all read through it.
type EmployeeSource interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
}
