package window

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// DecodeName turns a raw name property into a string. Invalid UTF-8
// sequences are replaced with U+FFFD instead of failing.
func DecodeName(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "\uFFFD")
	}
	return string(out)
}
