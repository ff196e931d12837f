// Package editor provides a Bubble Tea component for reviewing and correcting
// part-of-speech tags, backed by the buffer package.
//
// The document is always shown in Display form. The component handles
// cursor movement, token highlighting, a tag picker fed by a taxonomy table,
// and a status line. Persistence and auto-tagging stay with the host: the
// editor emits SaveMsg and AutoTagMsg and expects SavedMsg and
// AutoTagResultMsg back.
package editor
