package extract

import (
	"math"
	"strconv"
	"strings"
	"time"

	"resume-parser/internal/patterns"
)

// ExperienceYears resolves total experience with two tiers.
//
// Tier 1: explicit "N years" phrasings; the maximum stated value wins. An
// author-stated total is a higher-precision signal than anything inferred.
//
// Tier 2 (only when tier 1 found nothing): sum the positive durations of
// "<Month> <Year> - <Month|Present> <Year>" ranges, rounded to 2 decimals.
// "Present" and a missing end year resolve against now.
//
// A malformed numeric token inside a range skips that range; it never aborts
// the extraction. Result is always >= 0.
func ExperienceYears(text string, now time.Time) float64 {
	lower := strings.ToLower(text)

	total := 0
	for _, re := range patterns.ExperiencePhrases {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(strings.TrimSuffix(m[1], "+"))
			if err != nil {
				continue
			}
			if years > total {
				total = years
			}
		}
	}
	if total > 0 {
		return float64(total)
	}

	sum := 0.0
	for _, m := range patterns.DateRange.FindAllStringSubmatch(text, -1) {
		startMonth := monthNum(m[1], 1)
		startYear, err := expandYear(m[2])
		if err != nil {
			continue
		}

		var endMonth, endYear int
		if m[3] == "Present" {
			endMonth = int(now.Month())
			endYear = now.Year()
		} else {
			endMonth = monthNum(m[3], 12)
			if m[4] == "" {
				// a named end month with no year means "this year"
				endYear = now.Year()
			} else {
				endYear, err = expandYear(m[4])
				if err != nil {
					continue
				}
			}
		}

		duration := float64(endYear-startYear) + float64(endMonth-startMonth)/12.0
		if duration > 0 {
			sum += duration
		}
	}
	if sum > 0 {
		return math.Round(sum*100) / 100
	}
	return 0
}

func monthNum(abbr string, def int) int {
	if n, ok := patterns.MonthNum[abbr]; ok {
		return n
	}
	return def
}

// expandYear parses a 2- or 4-digit year, expanding short years with the
// pivot rule: < 50 lands in the 2000s, otherwise the 1900s.
func expandYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if len(s) <= 2 {
		if y < 50 {
			y += 2000
		} else {
			y += 1900
		}
	}
	return y, nil
}
