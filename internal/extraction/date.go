package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

const monthNames = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// dateRule pairs a recognizer with a parser. Rules run in order; a rule whose
// match does not form a real calendar date is a non-match, not a failure, and
// evaluation continues with the next rule.
type dateRule struct {
	name  string
	re    *regexp.Regexp
	parse func(m []string) *time.Time
}

var basicDateRules = []dateRule{
	{
		// 11 Dec 2025, 3rd March 2024
		name: "day_month_name_year",
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)[a-z]*\.?,?\s+(\d{4})\b`),
		parse: func(m []string) *time.Time {
			return makeDate(atoi(m[3]), monthsByPrefix[strings.ToLower(m[2])], atoi(m[1]))
		},
	},
	{
		// Dec 11, 2025, December 3 2024
		name: "month_name_day_year",
		re:   regexp.MustCompile(`(?i)\b(` + monthNames + `)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`),
		parse: func(m []string) *time.Time {
			return makeDate(atoi(m[3]), monthsByPrefix[strings.ToLower(m[1])], atoi(m[2]))
		},
	},
	{
		// 15/12/2024, 15-12-24. Day-first; when the day-first reading is
		// impossible and the month-first one is not (12/15/2024), swap.
		name:  "numeric_dmy",
		re:    regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})\b`),
		parse: parseNumericDMY,
	},
	{
		// 2024-12-15
		name: "iso_ymd",
		re:   regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`),
		parse: func(m []string) *time.Time {
			return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
		},
	},
}

// dateRules is the full evaluation order: the basic rules first, then the
// labeled variant. The labeled closure consults basicDateRules, not dateRules,
// so package initialization stays acyclic.
var dateRules = append(append([]dateRule(nil), basicDateRules...), dateRule{
	// Date: <anything>. The captured tail is re-run through the basic rules.
	name: "labeled",
	re:   regexp.MustCompile(`(?i)\bdate[d]?\b\s*[:\-]?\s*([^\n]+)`),
	parse: func(m []string) *time.Time {
		for _, rule := range basicDateRules {
			if sub := rule.re.FindStringSubmatch(m[1]); sub != nil {
				if d := rule.parse(sub); d != nil {
					return d
				}
			}
		}
		return nil
	},
})

// extractDate applies the ordered date rules, first valid match wins.
func extractDate(text string) *time.Time {
	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d := rule.parse(m); d != nil {
			return d
		}
	}
	return nil
}

func parseNumericDMY(m []string) *time.Time {
	day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	return makeDate(year, time.Month(month), day)
}

// makeDate builds a pure calendar date, rejecting values time.Date would
// silently normalize (day 32, month 13).
func makeDate(year int, month time.Month, day int) *time.Time {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return nil
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return nil
	}
	return &d
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
