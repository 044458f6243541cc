package extract

import "resume-parser/internal/patterns"

// Phone returns the first phone-shaped match with its captured groups
// concatenated as found (country code, separators and all), or "" when the
// concatenation is shorter than 10 characters. The value is deliberately not
// normalized; the review form shows what the document said.
func Phone(text string) string {
	m := patterns.Phone.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	phone := m[1] + m[2]
	if len(phone) >= 10 {
		return phone
	}
	return ""
}
