package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qyinm/staffdir/types"
)

var generated = time.Date(2026, 2, 26, 9, 0, 0, 0, time.UTC)

func employees() []types.Employee {
	return []types.Employee{
		types.NewEmployee("1", "Ana Silva", "Dev", "2024-03-05", "11999999999", "ana.png"),
		types.NewEmployee("2", "Bob <script>", "Manager", "bad date", "21888888888", "https://img.example/bob.png"),
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" HTML ")
	require.NoError(t, err)
	assert.Equal(t, HTML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, HTML, NewSnapshot(employees(), "", "assets/images", generated)))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	headers := doc.Find("table.employees thead th").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Photo", "Name", "Job", "Admission date", "Phone"}, headers)

	rows := doc.Find("table.employees tbody tr")
	require.Equal(t, 2, rows.Length())

	first := rows.Eq(0)
	id, _ := first.Attr("data-id")
	assert.Equal(t, "1", id)
	src, _ := first.Find("img").Attr("src")
	assert.Equal(t, "assets/images/ana.png", src)
	cells := first.Find("td").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	assert.Equal(t, []string{"", "Ana Silva", "Dev", "05/03/2024", "+55 (11) 99999-9999"}, cells)

	second := rows.Eq(1)
	src, _ = second.Find("img").Attr("src")
	assert.Equal(t, "https://img.example/bob.png", src)
	assert.Equal(t, "Bob <script>", second.Find("td").Eq(1).Text(), "names are escaped, not injected")
	assert.Equal(t, "bad date", second.Find("td").Eq(3).Text())
	assert.Equal(t, 0, doc.Find("body script").Length())
}

func TestWriteHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, HTML, NewSnapshot(employees(), "nobody", "", generated)))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("table").Length())
	assert.Equal(t, "No employees found.", doc.Find("p.no-results").Text())
	assert.Contains(t, doc.Find("p.query").Text(), "nobody")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, NewSnapshot(employees(), "dev", "assets/images", generated)))

	var got struct {
		Query string `json:"query"`
		Total int    `json:"total"`
		Rows  []struct {
			ID            string `json:"id"`
			Photo         string `json:"photo"`
			AdmissionDate string `json:"admission_date"`
			Phone         string `json:"phone"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "dev", got.Query)
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "1", got.Rows[0].ID)
	assert.Equal(t, "05/03/2024", got.Rows[0].AdmissionDate)
	assert.Equal(t, "+55 (11) 99999-9999", got.Rows[0].Phone)
}
