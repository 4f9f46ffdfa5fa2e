package analysis

import "regexp"

// All vocabulary and pattern tables live here as package-level immutable state.
// They are allocated and compiled exactly once; extractors never modify them.

var technicalSkills = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby",
	"golang", "rust", "kotlin", "swift", "scala", "sql", "html", "css",
	"react", "angular", "vue", "svelte", "next.js", "node.js", "express",
	"django", "flask", "spring", "laravel", "rails", "jquery", "bootstrap",
	"tailwind", "sass", "webpack", "graphql", "rest api", "redux", "flutter",
	"react native", "android", "ios",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"ci/cd", "git", "linux", "bash", "nginx",
	"mongodb", "mysql", "postgresql", "redis", "elasticsearch", "kafka",
	"hadoop", "spark", "tensorflow", "pytorch", "pandas", "numpy",
	"machine learning", "data analysis", "tableau", "power bi", "excel",
	"figma", "photoshop", "agile", "scrum", "jira",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"critical thinking", "time management", "adaptability", "collaboration",
	"creativity", "attention to detail", "project management", "analytical",
	"organized", "self-motivated", "mentoring", "presentation", "negotiation",
	"decision making", "conflict resolution", "customer service",
}

// actionVerbs are base forms; the matcher allows an optional ed/ing/s suffix.
var actionVerbs = []string{
	"accomplish", "adapt", "administer", "assist", "audit", "author", "boost",
	"build", "chair", "coach", "conduct", "construct", "consult", "convert",
	"deliver", "deploy", "design", "develop", "direct", "earn", "edit",
	"engineer", "establish", "exceed", "expand", "forecast", "gain", "head",
	"implement", "instruct", "launch", "lead", "maintain", "mentor", "monitor",
	"obtain", "perform", "plan", "present", "publish", "recruit", "redesign",
	"report", "research", "spearhead", "strengthen", "support", "teach",
	"train", "transform",
}

// sectionCatalog fixes both the section names and their declaration order.
// A section counts as found when any keyword appears as a substring.
var sectionCatalog = []struct {
	Name     string
	Keywords []string
}{
	{"Professional Summary", []string{"summary", "objective", "profile", "about me"}},
	{"Work Experience", []string{"experience", "employment", "work history", "professional experience"}},
	{"Education", []string{"education", "academic", "qualifications"}},
	{"Skills", []string{"skills", "technologies", "competencies", "proficiencies"}},
	{"Projects", []string{"projects", "portfolio"}},
	{"Certifications", []string{"certification", "certificate", "license"}},
	{"Awards", []string{"award", "honor", "achievement"}},
}

// jobStopWords filters job-description tokens that carry no signal.
var jobStopWords = map[string]bool{
	"with": true, "that": true, "have": true, "this": true, "will": true,
	"your": true, "from": true, "they": true, "been": true, "very": true,
	"when": true, "just": true, "like": true, "make": true, "many": true,
	"more": true, "only": true, "over": true, "such": true, "take": true,
	"than": true, "them": true, "well": true, "were": true, "what": true,
	"also": true, "into": true, "other": true, "their": true, "about": true,
	"would": true, "work": true,
}

const bulletGlyphs = "•-*►▪"

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	// Postal heuristics: a ZIP-like token or a "City, ST" shaped token.
	zipPattern       = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	cityStatePattern = regexp.MustCompile(`\b[A-Z][a-z]+,\s?[A-Z]{2}\b`)

	actionVerbPattern = regexp.MustCompile(`(?i)\b(` + joinAlternation(actionVerbs) + `)(?:ed|ing|s)?\b`)

	// One entry per quantified-achievement rule; counts are summed across all of them.
	quantifiedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent)`),
		regexp.MustCompile(`\$\s*\d[\d,]*(?:\.\d+)?\s*[kKmMbB]?`),
		regexp.MustCompile(`(?i)\b\d+\+?\s*(?:years?|yrs?|months?)\b`),
		regexp.MustCompile(`(?i)\b\d+\+?\s*(?:team members?|people|employees?|clients?|customers?|users?)\b`),
		regexp.MustCompile(`(?i)\b\d+\+?\s*(?:projects?|applications?|systems?|products?)\b`),
		regexp.MustCompile(`(?i)\bincreas(?:e|ed|es|ing)\b[^.\n]{0,40}?\d`),
		regexp.MustCompile(`(?i)\breduc(?:e|ed|es|ing)\b[^.\n]{0,40}?\d`),
		regexp.MustCompile(`(?i)\bsav(?:e|ed|es|ing)\b[^.\n]{0,40}?\d`),
		regexp.MustCompile(`(?i)\bgr(?:ow|ows|owing|ew)\b[^.\n]{0,40}?\d`),
	}

	monthYearPattern = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)\.?\s+\d{4}\b`)
	degreePattern    = regexp.MustCompile(`(?i)(?:\b(?:bachelor|master|phd|ph\.d|doctorate|associate|diploma|mba)\b|\bb\.s\.|\bb\.a\.|\bm\.s\.|\bm\.a\.)`)

	jobTokenPattern = regexp.MustCompile(`[a-z]{4,}`)
)

func joinAlternation(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(w)
	}
	return out
}
