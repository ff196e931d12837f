package tagtext

import "strings"

// Sniff guesses the form of a persisted document.
//
// The first token of the first non-blank line decides: a '/' after its first
// character means Storage, anything else means Display. A Display document
// opening with a word such as "and/or" is misread as Storage; callers that
// know the form should carry it explicitly instead. ok is false when text has
// no non-blank line.
func Sniff(text string) (form Form, ok bool) {
	for _, line := range strings.Split(text, sentenceSeparator) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.Index(fields[0], Storage.TagDelimiter()) > 0 {
			return Storage, true
		}
		return Display, true
	}
	return Display, false
}
