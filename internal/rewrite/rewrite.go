// Package rewrite synthesizes an "optimized" résumé document from a stored
// analysis. This is a deterministic text-template operation: no external
// calls, same input always produces the same document.
package rewrite

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/lexicon"
	"resume-analyzer/internal/sections"
)

const (
	fallbackName  = "Your Name"
	fallbackEmail = "your.email@example.com"
	fallbackPhone = "(555) 123-4567"
)

var weakPhrases = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)responsible for`), "Led"},
	{regexp.MustCompile(`(?i)worked on`), "Developed"},
	{regexp.MustCompile(`(?i)helped`), "Collaborated to"},
	{regexp.MustCompile(`(?i)did`), "Executed"},
	{regexp.MustCompile(`(?i)made`), "Created"},
}

// GenerateOptimizedResume rebuilds an idealized résumé from the extracted
// text of a stored analysis.
func GenerateOptimizedResume(extractedText string) string {
	lower := strings.ToLower(extractedText)
	parts := sections.Extract(extractedText)

	name := firstLine(extractedText)
	if name == "" {
		name = fallbackName
	}
	email := lexicon.FirstEmail(extractedText)
	if email == "" {
		email = fallbackEmail
	}
	phone := lexicon.FirstPhone(extractedText)
	if phone == "" {
		phone = fallbackPhone
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(name))
	b.WriteString("\n")
	b.WriteString(email)
	b.WriteString(" | ")
	b.WriteString(phone)
	b.WriteString("\n\nPROFESSIONAL SUMMARY\n")
	b.WriteString(optimizedSummary(lower))
	b.WriteString("\n\nPROFESSIONAL EXPERIENCE\n")
	b.WriteString(optimizedExperience(parts[sections.Experience]))
	b.WriteString("\n\nEDUCATION\n")
	b.WriteString(optimizedEducation(parts[sections.Education]))
	b.WriteString("\n\n")
	b.WriteString(optimizedSkills(lower))
	b.WriteString("\n\n")
	b.WriteString(additionalSections())
	b.WriteString("\n\n")
	b.WriteString(footer())

	return b.String()
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

func optimizedSummary(lower string) string {
	found := lexicon.FilterPresent(lexicon.TechKeywords, lower)
	if len(found) > 4 {
		found = found[:4]
	}
	expertise := strings.Join(found, ", ")
	if expertise == "" {
		expertise = "technology solutions"
	}
	return "Results-driven professional with proven expertise in " + expertise +
		". Demonstrated track record of delivering high-impact projects and driving operational excellence. " +
		"Strong analytical and problem-solving abilities with excellent communication skills and a collaborative approach to achieving organizational goals."
}

func optimizedExperience(experience string) string {
	if strings.TrimSpace(experience) == "" {
		return `SENIOR SOFTWARE ENGINEER | Tech Solutions Inc. | 2021 - Present
• Developed and deployed 15+ scalable web applications, increasing user engagement by 40%
• Led cross-functional team of 8 developers, delivering projects 25% ahead of schedule
• Implemented automated testing frameworks, reducing bug reports by 60%
• Collaborated with product managers to define technical requirements for new features

SOFTWARE DEVELOPER | Innovation Labs | 2019 - 2021
• Built responsive web applications using React and Node.js, serving 10K+ daily users
• Optimized database queries and API performance, improving response times by 50%
• Participated in code reviews and mentored 3 junior developers
• Contributed to agile development processes and sprint planning sessions`
	}

	enhanced := experience
	for _, sub := range weakPhrases {
		enhanced = sub.pattern.ReplaceAllString(enhanced, sub.replacement)
	}
	return enhanced
}

func optimizedEducation(education string) string {
	if strings.TrimSpace(education) == "" {
		return `BACHELOR OF SCIENCE IN COMPUTER SCIENCE
University of Technology | 2015 - 2019
• Relevant Coursework: Data Structures, Algorithms, Software Engineering, Database Systems
• Academic Projects: Built web applications, mobile apps, and data analysis tools
• GPA: 3.7/4.0`
	}
	return education
}

func optimizedSkills(lower string) string {
	foundTech := lexicon.FilterPresent(lexicon.TechKeywords, lower)
	foundSoft := lexicon.FilterPresent(lexicon.SoftSkillKeywords, lower)

	fillerTech := []string{"JavaScript", "Python", "React", "Node.js", "SQL", "Git", "AWS", "Docker"}
	fillerSoft := []string{"Leadership", "Communication", "Problem Solving", "Project Management"}

	tech := mergeDedupe(foundTech, fillerTech, 12)
	soft := mergeDedupe(foundSoft, fillerSoft, 8)

	return "TECHNICAL SKILLS\n" + strings.Join(tech, " • ") +
		"\n\nCORE COMPETENCIES\n" + strings.Join(soft, " • ")
}

// mergeDedupe appends filler entries after the detected ones, dropping
// case-insensitive duplicates and capping the result.
func mergeDedupe(detected, filler []string, limit int) []string {
	seen := make(map[string]bool, limit)
	out := make([]string, 0, limit)
	for _, group := range [][]string{detected, filler} {
		for _, skill := range group {
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func additionalSections() string {
	return `ACHIEVEMENTS
• Increased team productivity by 30% through implementation of agile methodologies
• Recognized as "Employee of the Quarter" for outstanding project delivery
• Successfully delivered 20+ projects with 98% client satisfaction rate

CERTIFICATIONS
• AWS Certified Solutions Architect (if applicable to role)
• Certified Scrum Master (if applicable)
• Professional Development Certificate in Advanced Technologies`
}

func footer() string {
	return `---
This optimized resume incorporates:
• Action-oriented language with quantified achievements
• Industry-relevant keywords for ATS optimization
• Professional formatting with clear section headers
• Balanced technical and soft skills presentation
• Strategic content placement for maximum impact
`
}
