// Package lexicon holds the fixed keyword vocabularies and text matchers
// shared by the résumé analyzers. Everything here is pure and deterministic.
package lexicon

import "strings"

// TechKeywords is the ordered technical vocabulary used for keyword scoring
// and ATS keyword-density checks.
var TechKeywords = []string{
	"javascript", "python", "java", "react", "node.js", "sql", "mongodb", "aws",
	"docker", "kubernetes", "git", "agile", "scrum", "machine learning", "data analysis",
	"typescript", "vue", "angular", "express", "postgresql", "redis", "elasticsearch",
}

// SoftSkillKeywords is the ordered soft-skill vocabulary.
var SoftSkillKeywords = []string{
	"leadership", "communication", "problem solving", "teamwork", "project management",
	"analytical", "creative", "strategic", "detail-oriented", "adaptable",
}

// ActionVerbs are the verbs rewarded by the content scorer.
var ActionVerbs = []string{"managed", "developed", "led", "created", "implemented", "improved"}

// TitleKeywords are job-title tokens rewarded by the experience scorer.
var TitleKeywords = []string{"engineer", "developer", "manager", "analyst", "designer", "specialist"}

// JobVocabulary is the superset vocabulary used to extract skill keywords
// from job descriptions. Order is fixed: extraction results preserve it.
var JobVocabulary = []string{
	// Programming languages
	"javascript", "typescript", "python", "java", "c#", "c++", "php", "ruby", "go", "rust",
	"kotlin", "swift", "objective-c", "scala", "r", "sql", "html", "css", "xml", "json",

	// Frontend frameworks
	"react", "vue", "angular", "svelte", "next.js", "nuxt", "ember", "backbone",

	// Backend frameworks
	"node.js", "express", "django", "flask", "spring", "asp.net", "laravel", "rails",
	"gradle", "maven", "fastapi",

	// Databases
	"mongodb", "postgresql", "mysql", "oracle", "sql server", "elasticsearch", "redis",
	"dynamodb", "cassandra", "mariadb", "firebase",

	// DevOps & cloud
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
	"circleci", "travis", "heroku", "vagrant", "terraform", "ansible",

	// Tools & platforms
	"git", "svn", "jira", "confluence", "slack", "trello", "asana", "figma", "sketch",
	"adobe", "photoshop", "illustrator", "xd", "visual studio", "intellij", "vscode",

	// Methodologies & practices
	"agile", "scrum", "kanban", "waterfall", "ci/cd", "testing", "tdd", "bdd",
	"rest api", "graphql", "microservices", "monolithic", "serverless",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"creative", "strategic", "detail-oriented", "adaptable", "organized",
	"project management", "mentoring", "collaboration", "negotiation",
}

// FilterPresent returns the vocabulary terms contained in text, preserving
// vocabulary order. Matching is case-insensitive substring containment.
func FilterPresent(vocabulary []string, text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}

// FilterMissing returns the vocabulary terms not contained in text,
// preserving vocabulary order.
func FilterMissing(vocabulary []string, text string) []string {
	lower := strings.ToLower(text)
	missing := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if !strings.Contains(lower, term) {
			missing = append(missing, term)
		}
	}
	return missing
}
