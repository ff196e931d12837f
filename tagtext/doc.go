// Package tagtext converts part-of-speech tagged text between its two
// textual encodings.
//
// Storage form is the persisted and interop encoding: one sentence per line,
// tokens joined by ", ", each token written as word/tag.
//
// Display form is the on-screen encoding: one sentence per line, tokens
// joined by a single space, each token written as word_TAG. Punctuation is
// never tagged in Display form and renders as the bare character.
package tagtext
