// Package sections partitions raw résumé text into labeled section buckets.
package sections

import "strings"

// Section names produced by Extract.
const (
	Experience = "experience"
	Education  = "education"
	Skills     = "skills"
	Summary    = "summary"
)

// Extract splits text into named sections by scanning for heading lines.
// A line containing "experience"/"work history", "education", "skills" or
// "summary"/"objective" (case-insensitive) opens a new bucket; subsequent
// lines accumulate into it until the next heading. Text before the first
// recognized heading is discarded. Missing sections are absent from the map.
func Extract(text string) map[string]string {
	out := make(map[string]string)
	var current string
	var buf strings.Builder

	flush := func() {
		if current == "" {
			return
		}
		if content := strings.TrimSpace(buf.String()); content != "" {
			out[current] = content
		}
		buf.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		switch {
		case strings.Contains(trimmed, "experience") || strings.Contains(trimmed, "work history"):
			flush()
			current = Experience
		case strings.Contains(trimmed, "education"):
			flush()
			current = Education
		case strings.Contains(trimmed, "skills"):
			flush()
			current = Skills
		case strings.Contains(trimmed, "summary") || strings.Contains(trimmed, "objective"):
			flush()
			current = Summary
		case current != "":
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	flush()

	return out
}
