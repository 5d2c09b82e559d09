package dto

import (
	"github.com/qyinm/staffdir/format"
	"github.com/qyinm/staffdir/types"
)

func FromEmployee(e types.Employee, assetDir string) Employee {
	return Employee{
		ID:            e.ID(),
		Name:          e.Name(),
		Job:           e.Job(),
		AdmissionDate: format.Date(e.AdmissionDate()),
		Phone:         format.Phone(e.Phone()),
		RawPhone:      e.Phone(),
		Photo:         format.Photo(e.Image(), assetDir),
	}
}

func FromEmployees(employees []types.Employee, assetDir string) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromEmployee(e, assetDir))
	}
	return out
}
