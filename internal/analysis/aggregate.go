package analysis

import "math"

// Weights for the overall score. Sub-scores sit on inconsistent internal
// scales (some capped at 100, some raw additive sums below it); the weighting
// is kept exactly as-is for behavioral compatibility.
const (
	contactWeight    = 0.15
	sectionWeight    = 0.20
	experienceWeight = 0.25
	skillsWeight     = 0.15
	formatWeight     = 0.10
	keywordWeight    = 0.15
)

// subScores holds the raw weighted inputs to the overall score.
type subScores struct {
	Contact    int
	Section    int
	Experience int
	Skills     int
	Format     int
	Keyword    int
}

func computeSubScores(d *Details) subScores {
	s := subScores{}

	if d.Contact.HasEmail {
		s.Contact += 25
	}
	if d.Contact.HasPhone {
		s.Contact += 25
	}
	if d.Contact.HasLinkedIn {
		s.Contact += 20
	}
	if d.Contact.HasGitHub {
		s.Contact += 15
	}
	if d.Contact.HasPortfolio {
		s.Contact += 15
	}

	s.Section = 12 * len(d.Sections.SectionsFound)

	switch {
	case d.Experience.ActionVerbCount >= 8:
		s.Experience = 30
	case d.Experience.ActionVerbCount >= 4:
		s.Experience = 20
	default:
		s.Experience = 10
	}
	switch {
	case d.Experience.QuantifiedCount >= 3:
		s.Experience += 25
	case d.Experience.QuantifiedCount > 0:
		s.Experience += 10
	}

	s.Skills = clampScore(len(d.Skills.SkillsFound) * 3)

	switch {
	case d.Format.WordCount >= 300 && d.Format.WordCount <= 800:
		s.Format = 25
	case d.Format.WordCount > 800:
		s.Format = 15
	default:
		s.Format = 10
	}
	switch {
	case d.Format.BulletPointCount >= 10:
		s.Format += 25
	case d.Format.BulletPointCount >= 5:
		s.Format += 15
	}

	s.Keyword = 50
	if d.JobMatch.JobMatchPercentage != nil {
		s.Keyword = *d.JobMatch.JobMatchPercentage
	}

	s.Contact = clampScore(s.Contact)
	s.Section = clampScore(s.Section)
	s.Experience = clampScore(s.Experience)
	s.Format = clampScore(s.Format)
	s.Keyword = clampScore(s.Keyword)

	return s
}

func overallScore(s subScores) int {
	weighted := float64(s.Contact)*contactWeight +
		float64(s.Section)*sectionWeight +
		float64(s.Experience)*experienceWeight +
		float64(s.Skills)*skillsWeight +
		float64(s.Format)*formatWeight +
		float64(s.Keyword)*keywordWeight

	return clampScore(int(math.Round(weighted)))
}

// tenPointScore maps the 0-100 overall score onto the 1-10 output scale.
func tenPointScore(overall int) int {
	score := int(math.Round(float64(overall) / 10))
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// Presentation-layer fields. These are explanatory only and never feed back
// into the overall score.

func finalKeywordMatch(s subScores, jobMatch *int) int {
	if jobMatch != nil {
		return *jobMatch
	}
	return clampScore(s.Skills + 10)
}

func finalFormatScore(s subScores, bulletCount int) int {
	score := s.Format
	if bulletCount >= 10 {
		score += 20
	}
	return clampScore(score)
}

func readabilityScore(d *Details) int {
	score := 0

	switch {
	case d.Format.AverageBulletLength >= 8 && d.Format.AverageBulletLength <= 25:
		score += 30
	case d.Format.AverageBulletLength > 0:
		score += 15
	}

	switch {
	case d.Format.WordCount >= 300 && d.Format.WordCount <= 800:
		score += 25
	case d.Format.WordCount > 800:
		score += 15
	default:
		score += 10
	}

	switch {
	case d.Format.BulletPointCount >= 10:
		score += 25
	case d.Format.BulletPointCount >= 5:
		score += 15
	}

	switch {
	case len(d.Sections.SectionsFound) >= 5:
		score += 20
	case len(d.Sections.SectionsFound) >= 3:
		score += 10
	}

	return clampScore(score)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
