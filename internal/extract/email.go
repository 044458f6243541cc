package extract

import "resume-parser/internal/patterns"

// Email returns the first email-shaped substring in document order, or "".
// Syntactic shape only; no deliverability checks.
func Email(text string) string {
	return patterns.Email.FindString(text)
}
