package tagtext

import "strings"

// Token is a (word, tag) pair. Tag is empty for untagged tokens.
type Token struct {
	Word string
	Tag  string
}

func (t Token) Tagged() bool { return t.Tag != "" }

// ParseToken splits s on the first occurrence of form's tag delimiter.
//
// A token without the delimiter, or whose delimiter is the first character,
// is untagged: the whole input becomes the word. In Storage form a tag equal
// to the word is the untagged placeholder and decodes to an empty tag. The
// cost falls on Penn tags that name themselves: an upper-case "TO/TO",
// "IN/IN" or "CD/CD" reads as untagged and renders in Display as the bare
// word.
func ParseToken(s string, form Form) Token {
	i := strings.Index(s, form.TagDelimiter())
	if i <= 0 {
		return Token{Word: s}
	}
	t := Token{Word: s[:i], Tag: s[i+len(form.TagDelimiter()):]}
	if form == Storage && t.Tag == t.Word {
		t.Tag = ""
	}
	return t
}

// Format renders t in form, ignoring punctuation rules.
//
// Untagged tokens render as the bare word in Display form and as word/word in
// Storage form.
func (t Token) Format(form Form) string {
	tag := t.Tag
	if tag == "" {
		if form == Display {
			return t.Word
		}
		tag = t.Word
	}
	return t.Word + form.TagDelimiter() + tag
}
