package extraction

import (
	"regexp"
	"strings"
)

var alphabeticRe = regexp.MustCompile(`\p{L}`)

// extractDescription selects the first line carrying alphabetic content as the
// merchant/transaction label. When no such line exists the very first non-empty
// line is used instead at a reduced weight: a digits-and-symbols line is likely
// not a real description.
func extractDescription(text string) (*string, float64) {
	var firstNonEmpty string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if firstNonEmpty == "" {
			firstNonEmpty = line
		}
		if alphabeticRe.MatchString(line) {
			return strPtr(truncate(line, maxDescriptionLen)), descriptionWeight
		}
	}
	if firstNonEmpty != "" {
		return strPtr(truncate(firstNonEmpty, maxDescriptionLen)), descriptionFallbackWeight
	}
	return nil, 0
}
