package tagtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultPunctuation is the set of characters treated as standalone tokens.
const DefaultPunctuation = ".,!?;:()"

// Codec converts whole documents between Storage and Display form.
//
// The zero value uses DefaultPunctuation.
type Codec struct {
	// Punctuation lists the characters that always form a token of their own
	// and never carry a tag in Display form.
	Punctuation string
}

var defaultCodec = Codec{Punctuation: DefaultPunctuation}

// ToStorage converts a Display document with the default codec.
func ToStorage(text string) string { return defaultCodec.ToStorage(text) }

// ToDisplay converts a Storage document with the default codec.
func ToDisplay(text string) string { return defaultCodec.ToDisplay(text) }

func (c Codec) punctuation() string {
	if c.Punctuation == "" {
		return DefaultPunctuation
	}
	return c.Punctuation
}

// IsPunctuation reports whether word is a single punctuation character.
func (c Codec) IsPunctuation(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || size != len(word) {
		return false
	}
	return strings.ContainsRune(c.punctuation(), r)
}

// ToStorage converts a Display document to Storage form.
//
// Every input line yields exactly one output line, so blank lines survive as
// empty sentences.
func (c Codec) ToStorage(text string) string {
	lines := strings.Split(text, sentenceSeparator)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, c.sentenceToStorage(line))
	}
	return strings.Join(out, sentenceSeparator)
}

func (c Codec) sentenceToStorage(line string) string {
	words := c.splitDisplayWords(line)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, ParseToken(w, Display).Format(Storage))
	}
	return strings.Join(parts, Storage.TokenDelimiter())
}

// splitDisplayWords splits a Display sentence on spaces and peels punctuation
// characters off as their own words, regardless of spacing.
func (c Codec) splitDisplayWords(line string) []string {
	punct := c.punctuation()
	var (
		words []string
		start = -1
	)
	flush := func(end int) {
		if start < 0 {
			return
		}
		if w := strings.TrimSpace(line[start:end]); w != "" {
			words = append(words, w)
		}
		start = -1
	}
	for i, r := range line {
		switch {
		case r == ' ':
			flush(i)
		case strings.ContainsRune(punct, r):
			flush(i)
			words = append(words, string(r))
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(line))
	return words
}

// ToDisplay converts a Storage document to Display form.
//
// Blank and whitespace-only sentences are dropped.
func (c Codec) ToDisplay(text string) string {
	lines := strings.Split(text, sentenceSeparator)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		out = append(out, c.sentenceToDisplay(line))
	}
	return strings.Join(out, sentenceSeparator)
}

func (c Codec) sentenceToDisplay(line string) string {
	raw := strings.Split(line, Storage.TokenDelimiter())
	parts := make([]string, 0, len(raw))
	for _, s := range raw {
		parts = append(parts, c.FormatToken(ParseToken(s, Storage), Display))
	}
	return strings.Join(parts, Display.TokenDelimiter())
}

// FormatToken renders t in form, applying the codec's punctuation rule in
// Display form.
func (c Codec) FormatToken(t Token, form Form) string {
	if form == Display && c.IsPunctuation(t.Word) {
		return t.Word
	}
	return t.Format(form)
}

// ParseSentence tokenises a single sentence in form.
func (c Codec) ParseSentence(line string, form Form) []Token {
	var raw []string
	if form == Display {
		raw = c.splitDisplayWords(line)
	} else {
		if isBlank(line) {
			return nil
		}
		raw = strings.Split(line, Storage.TokenDelimiter())
	}
	toks := make([]Token, 0, len(raw))
	for _, s := range raw {
		toks = append(toks, ParseToken(s, form))
	}
	return toks
}

// FormatSentence renders toks as a single sentence in form.
func (c Codec) FormatSentence(toks []Token, form Form) string {
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		parts = append(parts, c.FormatToken(t, form))
	}
	return strings.Join(parts, form.TokenDelimiter())
}

// Convert re-encodes text from one form to another. Converting to the same
// form returns text unchanged.
func (c Codec) Convert(text string, from, to Form) string {
	switch {
	case from == to:
		return text
	case to == Storage:
		return c.ToStorage(text)
	default:
		return c.ToDisplay(text)
	}
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
