package extract

import (
	"unicode/utf8"

	"resume-parser/constants"
	"resume-parser/internal/nlp"
)

// Name returns the longest PERSON span by character count, on the heuristic
// that the full name is usually the longest person mention while later
// references ("Jon") are partial. Ties keep the earlier span. Empty when no
// PERSON entities exist.
func Name(spans []nlp.Span) string {
	best := ""
	bestLen := 0
	for _, s := range spans {
		if s.Label != constants.LabelPerson {
			continue
		}
		if n := utf8.RuneCountInString(s.Text); n > bestLen {
			best, bestLen = s.Text, n
		}
	}
	return best
}
