package resume

import (
	"testing"

	"github.com/spigell/resume-scorer/internal/analysis"
)

func TestProjectToText(t *testing.T) {
	doc := &Document{
		StudentID: "s-1",
		Data: Data{
			PersonalInfo: &PersonalInfo{
				FullName: "Jane Doe",
				Email:    "jane@example.com",
				LinkedIn: "linkedin.com/in/janedoe",
			},
			Summary: "Backend engineer.",
			Education: []Education{
				{Institution: "State University", Degree: "Bachelor of Science", Field: "Computer Science", StartDate: "2013", EndDate: "2017"},
			},
			Experience: []Experience{
				{Title: "Senior Engineer", Company: "Acme Corp", StartDate: "Jan 2020", Description: []string{"Shipped the billing service", "Ran on-call"}},
			},
			Skills: []Skill{
				{Name: "Go", Category: "Languages"},
				{Name: "Docker"},
				{Name: "Python", Category: "Languages"},
				{Name: "Kubernetes", Category: "Infrastructure"},
			},
			Certifications: []Certification{{Name: "CKA", Issuer: "CNCF", Year: "2022"}},
			Awards:         []Award{{Title: "Dean's List"}},
		},
	}

	want := `Jane Doe
jane@example.com
linkedin.com/in/janedoe

Professional Summary
Backend engineer.

Education
Bachelor of Science in Computer Science
State University | 2013 - 2017

Work Experience
Senior Engineer
Acme Corp | Jan 2020 - Present
• Shipped the billing service
• Ran on-call

Skills
Languages: Go, Python
General: Docker
Infrastructure: Kubernetes

Certifications
CKA - CNCF (2022)

Awards
Dean's List`

	if got := ProjectToText(doc); got != want {
		t.Fatalf("unexpected projection:\n%s", got)
	}
}

func TestProjectToTextEmptyDocument(t *testing.T) {
	if got := ProjectToText(nil); got != "" {
		t.Fatalf("expected empty text for a nil document, got %q", got)
	}
	if got := ProjectToText(&Document{}); got != "" {
		t.Fatalf("expected empty text for an empty document, got %q", got)
	}
}

func TestProjectToTextSectionsSurviveAnalysis(t *testing.T) {
	doc := &Document{
		Data: Data{
			Experience: []Experience{
				{Title: "Backend Developer", Company: "Acme Corp", Description: []string{"Shipped the billing backend"}},
			},
		},
	}

	breakdown := analysis.AnalyzeResumeText(ProjectToText(doc), "")

	found := breakdown.Details.Sections.SectionsFound
	if len(found) != 1 || found[0] != "Work Experience" {
		t.Fatalf("expected only the work experience section, got %v", found)
	}
}

func TestFormatTenure(t *testing.T) {
	if got := formatTenure("Acme", "2020", ""); got != "Acme | 2020 - Present" {
		t.Fatalf("expected open tenure to end in Present, got %q", got)
	}
	if got := formatTenure("Acme", "", "2022"); got != "Acme" {
		t.Fatalf("expected bare name without a start date, got %q", got)
	}
	if got := formatTenure("", "2020", "2022"); got != "" {
		t.Fatalf("expected empty line without a name, got %q", got)
	}
}

func TestFormatCredential(t *testing.T) {
	if got := formatCredential("CKA", "", "2022"); got != "CKA (2022)" {
		t.Fatalf("unexpected credential line: %q", got)
	}
	if got := formatCredential("CKA", "CNCF", ""); got != "CKA - CNCF" {
		t.Fatalf("unexpected credential line: %q", got)
	}
}
