// Package format turns raw employee fields into display strings.
// Every function degrades to the raw input instead of failing.
package format

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultAssetDir is where bare image names are resolved.
const DefaultAssetDir = "assets/images"

// Date renders s as DD/MM/YYYY using local calendar fields.
// Surrounding whitespace is ignored. Blank or unparseable input is returned
// unchanged.
func Date(s string) string {
	v := strings.TrimSpace(s)
	if v == "" {
		return s
	}
	t, err := dateparse.ParseIn(v, time.Local)
	if err != nil {
		return s
	}
	return t.In(time.Local).Format("02/01/2006")
}

// Phone renders a Brazilian-style phone number.
//
//	10 digits  -> +55 (DD) DDDD-DDDD
//	11 digits  -> +55 (DD) DDDDD-DDDD
//	>11 digits -> +CC (AA) LLLLL-NNNN...
//
// Fewer than 10 digits returns s unchanged.
func Phone(s string) string {
	digits := onlyDigits(s)
	switch n := len(digits); {
	case n < 10:
		return s
	case n == 11:
		return "+55 (" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case n == 10:
		return "+55 (" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		// The 2-2-5 split assumes a two digit country code.
		return "+" + digits[:2] + " (" + digits[2:4] + ") " + digits[4:9] + "-" + digits[9:]
	}
}

// Photo resolves an image reference. Absolute URLs are kept verbatim,
// anything else is placed under assetDir.
func Photo(image, assetDir string) string {
	if strings.HasPrefix(image, "http") {
		return image
	}
	if assetDir == "" {
		assetDir = DefaultAssetDir
	}
	return strings.TrimRight(assetDir, "/") + "/" + image
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
