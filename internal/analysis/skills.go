package analysis

import "strings"

// DetectSkills tests both fixed vocabularies as case-insensitive substrings of
// the text and returns the union plus the two typed subsets.
func DetectSkills(text string) SkillSignals {
	lower := strings.ToLower(text)

	signals := SkillSignals{
		SkillsFound:     []string{},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
	}

	for _, skill := range technicalSkills {
		if strings.Contains(lower, skill) {
			signals.TechnicalSkills = append(signals.TechnicalSkills, skill)
			signals.SkillsFound = append(signals.SkillsFound, skill)
		}
	}

	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			signals.SoftSkills = append(signals.SoftSkills, skill)
			signals.SkillsFound = append(signals.SkillsFound, skill)
		}
	}

	return signals
}
