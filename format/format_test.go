package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "garbage", in: "not-a-date", want: "not-a-date"},
		{name: "date only", in: "2024-03-05", want: "05/03/2024"},
		{name: "local timestamp", in: "2023-01-15T10:30:00", want: "15/01/2023"},
		{name: "slashed", in: "2020/12/01", want: "01/12/2020"},
		{name: "padded", in: "  2024-03-05\n", want: "05/03/2024"},
		{name: "blank kept raw", in: "   ", want: "   "},
		{name: "padded garbage kept raw", in: " nope ", want: " nope "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "too short", in: "123", want: "123"},
		{name: "short keeps punctuation", in: "(11) 9876", want: "(11) 9876"},
		{name: "eleven digits", in: "11987654321", want: "+55 (11) 98765-4321"},
		{name: "ten digits", in: "1133334444", want: "+55 (11) 3333-4444"},
		{name: "punctuated eleven", in: "(11) 98765-4321", want: "+55 (11) 98765-4321"},
		{name: "international", in: "5511987654321", want: "+55 (11) 98765-4321"},
		{name: "long international", in: "+44 20 12345 67890", want: "+44 (20) 12345-67890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.in))
		})
	}
}

func TestPhoto(t *testing.T) {
	assert.Equal(t, "https://img.example/a.png", Photo("https://img.example/a.png", "assets/images"))
	assert.Equal(t, "http://img.example/a.png", Photo("http://img.example/a.png", ""))
	assert.Equal(t, "assets/images/a.png", Photo("a.png", ""))
	assert.Equal(t, "static/photos/a.png", Photo("a.png", "static/photos/"))
}
