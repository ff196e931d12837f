// Package buffer implements the grapheme-accurate document model for tagpad.
//
// A Buffer holds tagged text in one explicit tagtext.Form together with a
// cursor. Coordinates are 0-based (Row, GraphemeCol); rows are sentences.
// Ranges are half-open: [Start, End).
package buffer
