package analysis

import "strings"

// DetectExperience extracts achievement-related evidence: distinct action
// verbs, quantified-achievement matches, and rough entry counts for work
// experience and education.
func DetectExperience(text string) ExperienceSignals {
	verbs := matchActionVerbs(text)

	capped := verbs
	if len(capped) > maxActionVerbs {
		capped = capped[:maxActionVerbs]
	}

	quantified := 0
	for _, pattern := range quantifiedPatterns {
		quantified += len(pattern.FindAllString(text, -1))
	}

	// A resume typically states a start and an end date per role, so half the
	// month-year occurrences approximates the number of roles.
	experienceCount := len(monthYearPattern.FindAllString(text, -1)) / 2

	return ExperienceSignals{
		ActionVerbsUsed:           capped,
		ActionVerbCount:           len(verbs),
		HasQuantifiedAchievements: quantified >= 3,
		QuantifiedCount:           quantified,
		ExperienceCount:           experienceCount,
		EducationCount:            len(degreePattern.FindAllString(text, -1)),
	}
}

// matchActionVerbs returns the distinct base verbs matched in the text,
// in vocabulary order. The matcher tolerates ed/ing/s suffixes.
func matchActionVerbs(text string) []string {
	seen := make(map[string]bool)
	for _, match := range actionVerbPattern.FindAllStringSubmatch(text, -1) {
		seen[strings.ToLower(match[1])] = true
	}

	verbs := []string{}
	for _, verb := range actionVerbs {
		if seen[verb] {
			verbs = append(verbs, verb)
		}
	}

	return verbs
}
