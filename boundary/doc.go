// Package boundary finds the token under a cursor in tagged text and
// rewrites that token's tag in place.
//
// Offsets are byte offsets into the document string. A token is the maximal
// substring around the caret that contains none of the active form's
// separators (its token delimiter and the newline).
package boundary
