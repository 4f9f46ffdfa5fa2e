package analysis

import (
	"math"
	"strings"
)

// minJobDescriptionLength gates job-description matching: shorter inputs are
// treated as absent.
const minJobDescriptionLength = 50

// MatchJobDescription compares significant job-description keywords against
// the resume text. When the description is absent or too short the returned
// signals carry a nil percentage and the aggregator substitutes its default.
func MatchJobDescription(resumeText, jobDescription string) JobMatchSignals {
	if len(jobDescription) <= minJobDescriptionLength {
		return JobMatchSignals{}
	}

	resumeLower := strings.ToLower(resumeText)
	keywords := extractKeywords(jobDescription)

	matched := []string{}
	missing := []string{}
	for _, keyword := range keywords {
		if strings.Contains(resumeLower, keyword) {
			matched = append(matched, keyword)
			continue
		}
		if len(keyword) > 5 && len(missing) < maxMissingKeywords {
			missing = append(missing, keyword)
		}
	}

	percentage := 0
	if len(keywords) > 0 {
		percentage = int(math.Round(100 * float64(len(matched)) / float64(len(keywords))))
	}

	return JobMatchSignals{
		JobMatchPercentage: &percentage,
		MatchedKeywords:    matched,
		MissingKeywords:    missing,
	}
}

// extractKeywords lowercases the description, keeps alphabetic tokens of
// length >= 4, deduplicates preserving first occurrence, and drops stop words.
func extractKeywords(jobDescription string) []string {
	tokens := jobTokenPattern.FindAllString(strings.ToLower(jobDescription), -1)

	seen := make(map[string]bool, len(tokens))
	keywords := []string{}
	for _, token := range tokens {
		if seen[token] || jobStopWords[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return keywords
}
