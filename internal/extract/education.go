package extract

import (
	"strings"

	"resume-parser/constants"
	"resume-parser/internal/nlp"
	"resume-parser/internal/patterns"
)

// Education concatenates three passes, in order: educational ORG entities,
// degree phrases, then major phrases with the leading "in " stripped.
// Duplicate suppression is exact-string only — differently cased mentions of
// the same institution stay separate entries.
func Education(spans []nlp.Span, text string) []string {
	out := make([]string, 0, 4)

	for _, s := range spans {
		if s.Label != constants.LabelOrg {
			continue
		}
		if patterns.ContainsAny(s.Text, patterns.EducationOrgWords) {
			out = append(out, s.Text)
		}
	}

	for _, degree := range patterns.Degree.FindAllString(text, -1) {
		if !containsExact(out, degree) {
			out = append(out, degree)
		}
	}

	for _, major := range patterns.Major.FindAllString(text, -1) {
		major = strings.TrimPrefix(major, "in ")
		if !containsExact(out, major) {
			out = append(out, major)
		}
	}

	return out
}

func containsExact(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
