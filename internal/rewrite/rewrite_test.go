package rewrite

import (
	"strings"
	"testing"
)

const resumeWithSections = `John Doe
john.doe@email.com | (555) 123-4567

Summary
Engineer who worked on distributed systems and helped teams ship.

Experience
Software Engineer at Tech Corp
Responsible for backend services. Worked on APIs with javascript and react.

Education
BS Computer Science, State University, 2019

Skills
JavaScript, React, Leadership
`

func TestGenerateHeaderUsesContactDetails(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)
	if !strings.HasPrefix(doc, "JOHN DOE\n") {
		t.Errorf("document should open with uppercased name, got %q", doc[:20])
	}
	if !strings.Contains(doc, "john.doe@email.com | (555) 123-4567") {
		t.Errorf("contact line missing from document")
	}
}

func TestGenerateHeaderFallbacks(t *testing.T) {
	doc := GenerateOptimizedResume("")
	if !strings.HasPrefix(doc, "YOUR NAME\n") {
		t.Errorf("expected placeholder name, got %q", doc[:20])
	}
	if !strings.Contains(doc, "your.email@example.com | (555) 123-4567") {
		t.Errorf("expected placeholder contact line")
	}
}

func TestGenerateSummaryNamesDetectedSkills(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)
	if !strings.Contains(doc, "proven expertise in javascript, java, react") {
		t.Errorf("summary should name detected skills, got:\n%s", doc)
	}
}

func TestGenerateSummaryGenericWhenNoSkills(t *testing.T) {
	doc := GenerateOptimizedResume("Plain person\nno tools named here")
	if !strings.Contains(doc, "proven expertise in technology solutions") {
		t.Errorf("summary should fall back to generic expertise")
	}
}

func TestGenerateRewritesWeakPhrases(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)
	if strings.Contains(doc, "Responsible for") || strings.Contains(doc, "Worked on") {
		t.Errorf("weak phrases should be replaced:\n%s", doc)
	}
	if !strings.Contains(doc, "Led backend services") {
		t.Errorf("expected 'Responsible for' to become 'Led'")
	}
	if !strings.Contains(doc, "Developed APIs") {
		t.Errorf("expected 'Worked on' to become 'Developed'")
	}
}

func TestGenerateCannedExperienceWhenMissing(t *testing.T) {
	doc := GenerateOptimizedResume("Jane\nskills\npython")
	if !strings.Contains(doc, "SENIOR SOFTWARE ENGINEER | Tech Solutions Inc.") {
		t.Errorf("expected canned experience block")
	}
	if !strings.Contains(doc, "BACHELOR OF SCIENCE IN COMPUTER SCIENCE") {
		t.Errorf("expected canned education block")
	}
}

func TestGenerateKeepsExistingEducation(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)
	if !strings.Contains(doc, "BS Computer Science, State University, 2019") {
		t.Errorf("existing education text should survive")
	}
	if strings.Contains(doc, "BACHELOR OF SCIENCE IN COMPUTER SCIENCE") {
		t.Errorf("canned education should not appear when a section exists")
	}
}

func TestGenerateSkillsMergeAndCaps(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)

	start := strings.Index(doc, "TECHNICAL SKILLS\n")
	if start < 0 {
		t.Fatalf("missing technical skills section")
	}
	techLine := strings.SplitN(doc[start+len("TECHNICAL SKILLS\n"):], "\n", 2)[0]
	tech := strings.Split(techLine, " • ")
	if len(tech) > 12 {
		t.Errorf("technical skills = %d entries, cap is 12", len(tech))
	}
	// Detected lowercase entries come first, filler after, no duplicates.
	if tech[0] != "javascript" {
		t.Errorf("first tech skill = %q, want detected javascript", tech[0])
	}
	seen := map[string]bool{}
	for _, s := range tech {
		key := strings.ToLower(s)
		if seen[key] {
			t.Errorf("duplicate skill %q", s)
		}
		seen[key] = true
	}

	if !strings.Contains(doc, "CORE COMPETENCIES\n") {
		t.Fatalf("missing core competencies section")
	}
}

func TestGenerateFixedSections(t *testing.T) {
	doc := GenerateOptimizedResume(resumeWithSections)
	for _, want := range []string{
		"ACHIEVEMENTS",
		"CERTIFICATIONS",
		"This optimized resume incorporates:",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := GenerateOptimizedResume(resumeWithSections)
	b := GenerateOptimizedResume(resumeWithSections)
	if a != b {
		t.Fatalf("output should be deterministic")
	}
}
