package tagtext

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is the sentinel wrapped by every FormatError.
var ErrFormat = errors.New("malformed tagged text")

// FormatError reports a token that does not match the expected shape of its
// form. Line and Column are 1-based; Column counts bytes.
type FormatError struct {
	Form   Form
	Line   int
	Column int
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %q: %s", e.Form, e.Line, e.Column, e.Token, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// Validate checks text strictly against form and reports every malformed
// token. The codec itself never fails on such tokens; it degrades them to
// untagged words.
func (c Codec) Validate(text string, form Form) error {
	var errs []error
	for n, line := range strings.Split(text, sentenceSeparator) {
		if isBlank(line) {
			continue
		}
		for _, w := range c.rawTokens(line, form) {
			if reason := c.checkToken(w.text, form); reason != "" {
				errs = append(errs, &FormatError{
					Form:   form,
					Line:   n + 1,
					Column: w.off + 1,
					Token:  w.text,
					Reason: reason,
				})
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks text with the default codec.
func Validate(text string, form Form) error { return defaultCodec.Validate(text, form) }

type rawToken struct {
	text string
	off  int
}

func (c Codec) rawTokens(line string, form Form) []rawToken {
	delim := form.TokenDelimiter()
	var out []rawToken
	off := 0
	for {
		i := strings.Index(line[off:], delim)
		end := len(line)
		if i >= 0 {
			end = off + i
		}
		if s := line[off:end]; s != "" || form == Storage {
			out = append(out, rawToken{text: s, off: off})
		}
		if i < 0 {
			return out
		}
		off = end + len(delim)
	}
}

func (c Codec) checkToken(s string, form Form) string {
	if s == "" {
		return "empty token"
	}
	delim := form.TagDelimiter()
	i := strings.Index(s, delim)
	switch {
	case form == Display && c.IsPunctuation(s):
		return ""
	case i < 0 && form == Storage:
		return "missing " + delim + " between word and tag"
	case i < 0:
		// Untagged Display words are legal.
		return ""
	case i == 0:
		return "empty word"
	case i == len(s)-len(delim):
		return "empty tag"
	}
	return ""
}
