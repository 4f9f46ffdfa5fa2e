package analysis

import (
	"fmt"
	"strings"
)

// Reason strings per overall-score band.
const (
	reasonExcellent = "Excellent resume with strong ATS compatibility"
	reasonGood      = "Good resume with minor areas for improvement"
	reasonDecent    = "Decent resume that needs some improvements"
	reasonPoor      = "Resume needs significant improvements for ATS compatibility"
)

func reasonForScore(overall int) string {
	switch {
	case overall >= 80:
		return reasonExcellent
	case overall >= 65:
		return reasonGood
	case overall >= 50:
		return reasonDecent
	default:
		return reasonPoor
	}
}

// feedback derives suggestions, strong points, and extra ATS flags from the
// extracted signals. Each rule is guarded by a threshold computed upstream;
// the rule order fixes the output order, and anything past the caps is
// silently dropped.
type feedback struct {
	Suggestions  []string
	StrongPoints []string
	ATSIssues    []string
}

func generateFeedback(d *Details) feedback {
	fb := feedback{
		Suggestions:  []string{},
		StrongPoints: []string{},
		ATSIssues:    []string{},
	}

	if !d.Contact.HasEmail {
		fb.suggest("Add a professional email address to your contact information")
	}
	if !d.Contact.HasPhone {
		fb.suggest("Add a phone number so recruiters can reach you")
	}
	if !d.Contact.HasLinkedIn {
		fb.suggest("Include a link to your LinkedIn profile")
	}

	if missingSection(d, "Work Experience") {
		fb.suggest("Add a dedicated work experience section")
		fb.ATSIssues = append(fb.ATSIssues, "Missing a work experience section")
	}
	if missingSection(d, "Skills") {
		fb.suggest("Add a skills section listing your key competencies")
		fb.ATSIssues = append(fb.ATSIssues, "Missing a skills section")
	}

	if len(d.Skills.TechnicalSkills) < 3 {
		fb.suggest("List more technical skills relevant to your field")
	}
	if d.Experience.ActionVerbCount < 4 {
		fb.suggest("Start bullet points with strong action verbs")
	}
	if !d.Experience.HasQuantifiedAchievements {
		fb.suggest("Quantify achievements with numbers, percentages, or amounts")
	}

	switch {
	case d.Format.WordCount < 300:
		fb.suggest("Expand your resume; it reads as too short")
	case d.Format.WordCount > 800:
		fb.suggest("Tighten your resume; it reads as too long")
	}
	if d.Format.BulletPointCount < 5 {
		fb.suggest("Use bullet points to structure accomplishments")
	}

	if pct := d.JobMatch.JobMatchPercentage; pct != nil && *pct < 50 {
		fb.suggest("Tailor your resume to the job description; the keyword overlap is low")
	}
	if len(d.JobMatch.MissingKeywords) > 0 {
		first := d.JobMatch.MissingKeywords
		if len(first) > 3 {
			first = first[:3]
		}
		fb.suggest(fmt.Sprintf("Consider adding keywords from the job description: %s", strings.Join(first, ", ")))
	}

	if d.Contact.HasEmail && d.Contact.HasPhone {
		fb.praise("Complete contact information")
	}
	if d.Contact.HasLinkedIn {
		fb.praise("LinkedIn profile included")
	}
	if d.Contact.HasGitHub {
		fb.praise("GitHub profile linked")
	}
	if n := len(d.Sections.SectionsFound); n >= 5 {
		fb.praise(fmt.Sprintf("Well-structured resume with %d sections", n))
	}
	if len(d.Skills.TechnicalSkills) >= 8 {
		fb.praise("Strong technical skill set")
	}
	if d.Experience.ActionVerbCount >= 8 {
		fb.praise("Effective use of action verbs")
	}
	if d.Experience.HasQuantifiedAchievements {
		fb.praise("Achievements are quantified")
	}
	if d.Format.WordCount >= 300 && d.Format.WordCount <= 800 {
		fb.praise("Good resume length")
	}
	if pct := d.JobMatch.JobMatchPercentage; pct != nil && *pct >= 70 {
		fb.praise("Strong keyword match with the job description")
	}

	if len(fb.Suggestions) > maxSuggestions {
		fb.Suggestions = fb.Suggestions[:maxSuggestions]
	}
	if len(fb.StrongPoints) > maxStrongPoints {
		fb.StrongPoints = fb.StrongPoints[:maxStrongPoints]
	}

	return fb
}

func (fb *feedback) suggest(s string) {
	fb.Suggestions = append(fb.Suggestions, s)
}

func (fb *feedback) praise(s string) {
	fb.StrongPoints = append(fb.StrongPoints, s)
}

func missingSection(d *Details, name string) bool {
	for _, section := range d.Sections.SectionsMissing {
		if section == name {
			return true
		}
	}
	return false
}
