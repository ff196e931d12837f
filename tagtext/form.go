package tagtext

import (
	"fmt"
	"strings"
)

// Form selects the pair of delimiters in effect for a document.
type Form uint8

const (
	Storage Form = iota
	Display
)

const sentenceSeparator = "\n"

func (f Form) String() string {
	switch f {
	case Storage:
		return "storage"
	case Display:
		return "display"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

// Valid reports whether f is one of the known forms.
func (f Form) Valid() bool {
	return f == Storage || f == Display
}

// TokenDelimiter returns the substring separating tokens within a sentence.
func (f Form) TokenDelimiter() string {
	if f == Display {
		return " "
	}
	return ", "
}

// TagDelimiter returns the substring separating a token's word from its tag.
func (f Form) TagDelimiter() string {
	if f == Display {
		return "_"
	}
	return "/"
}

// Separators returns every substring that ends a token in f: the token
// delimiter and the sentence separator.
func (f Form) Separators() []string {
	return []string{f.TokenDelimiter(), sentenceSeparator}
}

// ParseForm parses the String form of a Form. Matching is case-insensitive.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "storage":
		return Storage, nil
	case "display":
		return Display, nil
	default:
		return 0, fmt.Errorf("unknown form %q (want storage or display)", s)
	}
}
