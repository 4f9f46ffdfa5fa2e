package analysis

import (
	"reflect"
	"strings"
	"testing"
)

// strongResume is a contact-complete, well-sectioned, achievement-heavy
// resume in the 300-800 word band with more than ten bullet points.
var strongResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe
github.com/janedoe
Portfolio: https://janedoe.dev

Professional Summary
Senior backend engineer with 5 years of experience and a record of leadership, communication and teamwork.
` + strings.Repeat("Worked closely across departments to ship reliable services on schedule. ", 15) + `

Work Experience
Senior Engineer, Acme Corp, January 2020 - Present
• Developed a payment platform used by enterprise customers
• Increased API throughput by 45% under sustained load
• Delivered $1.2M in annual savings through capacity planning
• Mentored four junior engineers on the team
• Deployed services to production with zero downtime
Engineer, Widget Inc, June 2017 - December 2019
• Designed the internal billing pipeline from scratch
• Implemented a caching layer for the catalog service
• Launched the customer-facing status page
• Maintained the continuous integration fleet
• Wrote operational runbooks for the on-call rotation

Education
Bachelor of Science in Computer Science, State University, May 2017

Skills
JavaScript, TypeScript, Python, Java, Kotlin, Swift, Scala, SQL, HTML, CSS,
React, Angular, Vue, Svelte, Next.js, Node.js, Express, Django, Flask, Spring,
GraphQL, Redux, AWS, Azure, GCP, Docker, Kubernetes, Terraform, Jenkins, Git,
Linux, Bash, Nginx, MongoDB, MySQL, PostgreSQL, Redis, Kafka

Projects
Open source contributor to several infrastructure tools.

Certifications
Certified Kubernetes Administrator

Awards
Engineering excellence award, 2023
`

func TestAnalyzeResumeTextEmptyInput(t *testing.T) {
	breakdown := AnalyzeResumeText("", "")

	// Floors only: experience 10, format 10, keyword default 50.
	if breakdown.OverallScore != 11 {
		t.Fatalf("expected overall score 11, got %d", breakdown.OverallScore)
	}
	if breakdown.Score != 1 {
		t.Fatalf("expected score 1, got %d", breakdown.Score)
	}
	if breakdown.Reason != reasonPoor {
		t.Fatalf("unexpected reason: %q", breakdown.Reason)
	}
	if breakdown.KeywordMatch != 10 {
		t.Fatalf("expected keyword match 10, got %d", breakdown.KeywordMatch)
	}
	if breakdown.FormatScore != 10 {
		t.Fatalf("expected format score 10, got %d", breakdown.FormatScore)
	}
	if breakdown.ReadabilityScore != 10 {
		t.Fatalf("expected readability score 10, got %d", breakdown.ReadabilityScore)
	}

	if len(breakdown.Suggestions) != maxSuggestions {
		t.Fatalf("expected suggestions capped at %d, got %d", maxSuggestions, len(breakdown.Suggestions))
	}
	if len(breakdown.StrongPoints) != 0 {
		t.Fatalf("expected no strong points, got %v", breakdown.StrongPoints)
	}
	if len(breakdown.MissingKeywords) != 0 {
		t.Fatalf("expected no missing keywords, got %v", breakdown.MissingKeywords)
	}

	issues := breakdown.Details.Format.ATSIssues
	if !contains(issues, "Missing a work experience section") || !contains(issues, "Missing a skills section") {
		t.Fatalf("expected missing-section ATS flags, got %v", issues)
	}
}

func TestAnalyzeResumeTextStrongResume(t *testing.T) {
	breakdown := AnalyzeResumeText(strongResume, "")

	if breakdown.OverallScore != 73 {
		t.Fatalf("expected overall score 73, got %d", breakdown.OverallScore)
	}
	if breakdown.Score != 7 {
		t.Fatalf("expected score 7, got %d", breakdown.Score)
	}
	if breakdown.Reason != reasonGood {
		t.Fatalf("unexpected reason: %q", breakdown.Reason)
	}
	if len(breakdown.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", breakdown.Suggestions)
	}
	if len(breakdown.StrongPoints) != maxStrongPoints {
		t.Fatalf("expected %d strong points, got %v", maxStrongPoints, breakdown.StrongPoints)
	}
	if !contains(breakdown.StrongPoints, "Complete contact information") {
		t.Fatalf("expected contact praise, got %v", breakdown.StrongPoints)
	}

	d := breakdown.Details
	if len(d.Sections.SectionsFound) != len(sectionCatalog) {
		t.Fatalf("expected all sections found, got %v", d.Sections.SectionsFound)
	}
	if d.Experience.ActionVerbCount < 8 {
		t.Fatalf("expected at least 8 action verbs, got %d", d.Experience.ActionVerbCount)
	}
	if !d.Experience.HasQuantifiedAchievements {
		t.Fatalf("expected quantified achievements")
	}
	if d.Format.BulletPointCount != 10 {
		t.Fatalf("expected 10 bullets, got %d", d.Format.BulletPointCount)
	}
	if d.Format.WordCount < 300 || d.Format.WordCount > 800 {
		t.Fatalf("expected word count in the 300-800 band, got %d", d.Format.WordCount)
	}
	if len(d.Format.ATSIssues) != 0 {
		t.Fatalf("expected no ATS issues, got %v", d.Format.ATSIssues)
	}
}

func TestAnalyzeResumeTextIsDeterministic(t *testing.T) {
	first := AnalyzeResumeText(strongResume, "kubernetes and docker experience with postgresql required")
	second := AnalyzeResumeText(strongResume, "kubernetes and docker experience with postgresql required")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical breakdowns for identical inputs")
	}
}

func TestAnalyzeResumeTextEmailIsMonotonic(t *testing.T) {
	base := "A plain resume with nothing else of note."

	without := AnalyzeResumeText(base, "")
	with := AnalyzeResumeText(base+"\njane@example.com", "")

	if with.OverallScore <= without.OverallScore {
		t.Fatalf("adding an email must not lower the overall score: %d -> %d",
			without.OverallScore, with.OverallScore)
	}
}

func TestAnalyzeResumeTextJobDescriptionReplacesKeywordDefault(t *testing.T) {
	jd := "We are looking for kubernetes experience with docker and postgresql knowledge"

	breakdown := AnalyzeResumeText("Kubernetes and Docker admin", jd)

	if breakdown.KeywordMatch != 33 {
		t.Fatalf("expected keyword match 33, got %d", breakdown.KeywordMatch)
	}
	if len(breakdown.MissingKeywords) != 4 {
		t.Fatalf("expected 4 missing keywords, got %v", breakdown.MissingKeywords)
	}
}
