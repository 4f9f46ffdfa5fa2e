package analysis

import "strings"

// DetectContactInfo reports which contact channels appear in the resume text.
func DetectContactInfo(text string) ContactSignals {
	lower := strings.ToLower(text)

	return ContactSignals{
		HasEmail:     emailPattern.MatchString(text),
		HasPhone:     phonePattern.MatchString(text),
		HasLinkedIn:  strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "linkedin:"),
		HasGitHub:    strings.Contains(lower, "github.com") || strings.Contains(lower, "github:"),
		HasPortfolio: hasPortfolio(text, lower),
		HasAddress:   zipPattern.MatchString(text) || cityStatePattern.MatchString(text),
	}
}

// hasPortfolio looks for a generic URL that is not a LinkedIn/GitHub link, or
// the literal word "portfolio".
func hasPortfolio(text, lower string) bool {
	for _, link := range urlPattern.FindAllString(text, -1) {
		l := strings.ToLower(link)
		if strings.Contains(l, "linkedin") || strings.Contains(l, "github") {
			continue
		}
		return true
	}

	return strings.Contains(lower, "portfolio")
}
