package extract

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-parser/constants"
	"resume-parser/internal/nlp"
	"resume-parser/internal/patterns"
)

// Companies is generate-then-filter. Three generation sources feed one
// candidate set: capitalized phrases ending in a corporate suffix, employment
// phrasings ("worked at X Ltd", "role at Y Inc"), and ORG entities that carry
// a suffix. Each source drops candidates containing a non-company indicator
// before adding. The final filter rejects job titles, course names and
// technology terms, plus anything short or not starting uppercase.
//
// If everything was filtered away, fall back to raw ORG entities against a
// shorter exclusion list; if even that is empty, return the sentinel alone.
func Companies(spans []nlp.Span, text string) []string {
	candidates := make(map[string]struct{})

	for i, re := range patterns.SuffixPatterns() {
		suffix := patterns.CompanySuffixes[i]
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(m[1]) + " " + suffix
			if !patterns.ContainsAny(name, patterns.NonCompanyIndicators) {
				candidates[name] = struct{}{}
			}
		}
	}

	for _, re := range patterns.EmploymentPatterns() {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if !patterns.ContainsAny(m[1], patterns.NonCompanyIndicators) {
				candidates[strings.TrimSpace(m[1])] = struct{}{}
			}
		}
	}

	for _, s := range spans {
		if s.Label != constants.LabelOrg {
			continue
		}
		likelyCompany := patterns.ContainsAny(s.Text, patterns.CompanySuffixes)
		disqualified := patterns.ContainsAny(s.Text, patterns.NonCompanyIndicators)
		educational := patterns.ContainsAny(s.Text, patterns.EducationOrgWords)
		techTerm := patterns.ContainsAny(s.Text, patterns.OrgTechTerms)
		if likelyCompany && !(disqualified || educational || techTerm) {
			candidates[s.Text] = struct{}{}
		}
	}

	filtered := make([]string, 0, len(candidates))
	for c := range candidates {
		if patterns.ContainsAny(c, patterns.JobTitleWords) ||
			patterns.ContainsAny(c, patterns.CourseWords) ||
			patterns.ContainsAny(c, patterns.TechTermWords) {
			continue
		}
		if utf8.RuneCountInString(c) >= 4 && startsUpper(c) {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == 0 {
		fallback := make([]string, 0, len(spans))
		for _, s := range spans {
			if s.Label != constants.LabelOrg || utf8.RuneCountInString(s.Text) < 4 {
				continue
			}
			if !patterns.ContainsAny(s.Text, patterns.FallbackExcludeWords) {
				fallback = append(fallback, s.Text)
			}
		}
		if len(fallback) == 0 {
			return []string{constants.NoCompaniesDetected}
		}
		sort.Strings(fallback)
		return fallback
	}

	sort.Strings(filtered)
	return filtered
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
