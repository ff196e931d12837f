package boundary

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/tagpad/tagtext"
)

// Span is the half-open byte range [Start, Start+Len) of a token.
type Span struct {
	Start int
	Len   int
}

func (s Span) End() int { return s.Start + s.Len }

func (s Span) IsEmpty() bool { return s.Len == 0 }

// Slice returns the spanned substring of text.
func (s Span) Slice(text string) string {
	checkSpan(text, s)
	return text[s.Start:s.End()]
}

// Locate returns the span of the token that contains or immediately precedes
// caret.
//
// The token starts one past the rightmost separator found in text[:caret]
// (by absolute index, not by separator priority) and runs to the leftmost
// separator at or after that start, or to the end of text. A caret sitting on
// the first byte of a separator therefore resolves to the token on its left.
//
// Locate panics if caret is outside [0, len(text)].
func Locate(text string, caret int, form tagtext.Form) Span {
	if caret < 0 || caret > len(text) {
		panic(fmt.Sprintf("boundary: caret %d out of range [0, %d]", caret, len(text)))
	}
	seps := form.Separators()

	start := 0
	best := -1
	for _, sep := range seps {
		i := strings.LastIndex(text[:caret], sep)
		if i > best {
			best = i
			start = i + len(sep)
		}
	}

	n := len(text) - start
	for _, sep := range seps {
		if i := strings.Index(text[start:], sep); i >= 0 && i < n {
			n = i
		}
	}
	return Span{Start: start, Len: n}
}

// ReplaceTag rebuilds the token at span as word, the form's tag delimiter and
// newTag, and returns text with only that range changed.
//
// Any existing tag is discarded: the word is everything before the first tag
// delimiter in the token. An empty newTag clears the tag, which Display form
// renders as the bare word and Storage form as word/word. An empty span
// returns text unchanged.
//
// ReplaceTag panics if span is outside text.
func ReplaceTag(text string, span Span, newTag string, form tagtext.Form) string {
	checkSpan(text, span)
	if span.IsEmpty() {
		return text
	}
	word, _, _ := strings.Cut(text[span.Start:span.End()], form.TagDelimiter())
	rebuilt := tagtext.Token{Word: word, Tag: newTag}.Format(form)

	var sb strings.Builder
	sb.Grow(len(text) - span.Len + len(rebuilt))
	sb.WriteString(text[:span.Start])
	sb.WriteString(rebuilt)
	sb.WriteString(text[span.End():])
	return sb.String()
}

// TagAt reports the token parsed from span.
func TagAt(text string, span Span, form tagtext.Form) tagtext.Token {
	return tagtext.ParseToken(span.Slice(text), form)
}

func checkSpan(text string, s Span) {
	if s.Start < 0 || s.Len < 0 || s.End() > len(text) {
		panic(fmt.Sprintf("boundary: span [%d, %d) out of range [0, %d]", s.Start, s.End(), len(text)))
	}
}
