package lexicon

import (
	"regexp"
	"strings"
)

var (
	emailRe       = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe       = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	phoneLooseRe  = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearRe        = regexp.MustCompile(`\d{4}`)
	headerLineRe  = regexp.MustCompile(`(?i)^(experience|education|skills|summary|objective)`)
	headerAnyRe   = regexp.MustCompile(`(?im)^(experience|education|skills|summary)`)
	capitalPairRe = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
)

// ContainsEmail reports whether text contains an @ sign, the minimal
// email signal the scorers rely on.
func ContainsEmail(text string) bool {
	return strings.Contains(text, "@")
}

// ContainsPhone reports whether text contains a 3-3-4 digit phone grouping
// with optional dash or dot separators.
func ContainsPhone(text string) bool {
	return phoneRe.MatchString(text)
}

// YearTokens returns every 4-digit token in text, in order of appearance.
func YearTokens(text string) []string {
	return yearRe.FindAllString(text, -1)
}

// HasStandardHeader reports whether any trimmed line of text starts with a
// standard section heading.
func HasStandardHeader(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if headerLineRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// HasSectionHeading reports whether a section heading appears at the start
// of any line. This is the ATS variant: multiline, and "objective" does not
// count as a heading here.
func HasSectionHeading(text string) bool {
	return headerAnyRe.MatchString(text)
}

// HasCapitalizedPair reports whether text contains two adjacent capitalized
// words, the heuristic proxy for a company name.
func HasCapitalizedPair(text string) bool {
	return capitalPairRe.MatchString(text)
}

// FirstEmail returns the first email-looking token in text, or "".
func FirstEmail(text string) string {
	return emailRe.FindString(text)
}

// FirstPhone returns the first phone-looking token in text, or "". The
// pattern here is looser than ContainsPhone: parentheses and spaces are
// accepted, matching how contact lines are usually written.
func FirstPhone(text string) string {
	return phoneLooseRe.FindString(text)
}
