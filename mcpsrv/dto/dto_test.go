package dto

import (
	"reflect"
	"testing"

	"github.com/segmentio/encoding/json"

	"github.com/qyinm/staffdir/types"
)

func TestDTOJSONMarshal(t *testing.T) {
	e := types.NewEmployee("7", "Ana Silva", "Dev", "2024-03-05", "11999999999", "ana.png")

	b, err := json.Marshal(FromEmployee(e, "assets/images"))
	if err != nil {
		t.Fatalf("marshal employee dto: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal employee dto: %v", err)
	}

	if got["id"] != "7" {
		t.Fatalf("unexpected id: %v", got["id"])
	}
	if got["admission_date"] != "05/03/2024" {
		t.Fatalf("unexpected admission_date: %v", got["admission_date"])
	}
	if got["phone"] != "+55 (11) 99999-9999" {
		t.Fatalf("unexpected phone: %v", got["phone"])
	}
	if got["raw_phone"] != "11999999999" {
		t.Fatalf("unexpected raw_phone: %v", got["raw_phone"])
	}
	if got["photo"] != "assets/images/ana.png" {
		t.Fatalf("unexpected photo: %v", got["photo"])
	}
}

func TestFromEmployeesKeepsOrder(t *testing.T) {
	in := []types.Employee{
		types.NewEmployee("2", "Bob", "", "", "", "https://img.example/bob.png"),
		types.NewEmployee("1", "Ana", "", "", "", ""),
	}
	out := FromEmployees(in, "assets/images")
	if len(out) != 2 || out[0].ID != "2" || out[1].ID != "1" {
		t.Fatalf("unexpected order: %+v", out)
	}
	if out[0].Photo != "https://img.example/bob.png" {
		t.Fatalf("remote photo must be kept verbatim: %q", out[0].Photo)
	}
	if got := FromEmployees(nil, ""); got == nil || len(got) != 0 {
		t.Fatalf("nil input must give an empty, non-nil slice: %#v", got)
	}
}

func TestDTOFields(t *testing.T) {
	typ := reflect.TypeOf(Employee{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Type.Kind() != reflect.String {
			t.Fatalf("field %s in %s must be a string", field.Name, typ.Name())
		}
	}
}
