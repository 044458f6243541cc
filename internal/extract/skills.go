package extract

import (
	"sort"
	"strings"

	"resume-parser/constants"
	"resume-parser/internal/nlp"
	"resume-parser/internal/patterns"
)

// Skills unions three passes into one sorted set:
//
//	(a) the lowercase vocabulary matched on word boundaries in lowercased text,
//	(b) ORG entities whose lowercased text equals a vocabulary term (the
//	    recognizer tends to mislabel product names as organizations),
//	(c) the case-insensitive language-name pattern on the raw text, which keeps
//	    the casing found in the document.
func Skills(spans []nlp.Span, text string) []string {
	found := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, sp := range patterns.SkillPatterns {
		if sp.Re.MatchString(lower) {
			found[sp.Term] = struct{}{}
		}
	}

	for _, s := range spans {
		if s.Label != constants.LabelOrg {
			continue
		}
		if _, ok := patterns.TechSkillSet[strings.ToLower(s.Text)]; ok {
			found[s.Text] = struct{}{}
		}
	}

	for _, lang := range patterns.Languages.FindAllString(text, -1) {
		found[lang] = struct{}{}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
