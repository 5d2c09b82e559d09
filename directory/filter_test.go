package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qyinm/staffdir/types"
)

func sample() []types.Employee {
	return []types.Employee{
		types.NewEmployee("1", "Ana Silva", "Dev", "2024-03-05", "11999999999", "ana.png"),
		types.NewEmployee("2", "Bob", "Manager", "2020-01-10", "21888888888", "https://img.example/bob.png"),
	}
}

func TestFilter_EmptyQueryCopies(t *testing.T) {
	in := sample()
	out := Filter(in, "")
	require.Equal(t, in, out)

	out[0] = types.NewEmployee("9", "Changed", "", "", "", "")
	assert.Equal(t, "Ana Silva", in[0].Name(), "filter result must not alias the collection")
}

func TestFilter_Fields(t *testing.T) {
	in := sample()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "job case insensitive", query: "dev", want: []string{"1"}},
		{name: "phone digits", query: "21", want: []string{"2"}},
		{name: "name upper", query: "BOB", want: []string{"2"}},
		{name: "shared digit", query: "9", want: []string{"1"}},
		{name: "both", query: "a", want: []string{"1", "2"}},
		{name: "date not searched", query: "2024", want: []string{}},
		{name: "no trim", query: " ", want: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(in, tt.query)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	in := sample()
	first := Filter(in, "an")
	second := Filter(in, "an")
	assert.Equal(t, first, second)
	assert.Equal(t, first, Filter(first, "an"))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sample()
	before := append([]types.Employee(nil), in...)
	_ = Filter(in, "bob")
	assert.Equal(t, before, in)
}

func TestFilter_NilCollection(t *testing.T) {
	assert.Empty(t, Filter(nil, ""))
	assert.Empty(t, Filter(nil, "x"))
}

func TestSelectPhase(t *testing.T) {
	assert.Equal(t, types.Empty, SelectPhase(nil))
	assert.Equal(t, types.Populated, SelectPhase(sample()))
}
