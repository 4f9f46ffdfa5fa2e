package analysis

// ContactSignals describes which contact channels were detected in the text.
type ContactSignals struct {
	HasEmail     bool `json:"hasEmail"`
	HasPhone     bool `json:"hasPhone"`
	HasLinkedIn  bool `json:"hasLinkedIn"`
	HasGitHub    bool `json:"hasGitHub"`
	HasPortfolio bool `json:"hasPortfolio"`
	HasAddress   bool `json:"hasAddress"`
}

// SectionSignals lists catalog sections in their declaration order.
type SectionSignals struct {
	SectionsFound   []string `json:"sectionsFound"`
	SectionsMissing []string `json:"sectionsMissing"`
}

// SkillSignals holds vocabulary matches split by kind.
type SkillSignals struct {
	SkillsFound     []string `json:"skillsFound"`
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
}

// ExperienceSignals summarizes achievement-related evidence.
type ExperienceSignals struct {
	// ActionVerbsUsed is capped for presentation; ActionVerbCount drives scoring.
	ActionVerbsUsed           []string `json:"actionVerbsUsed"`
	ActionVerbCount           int      `json:"actionVerbCount"`
	HasQuantifiedAchievements bool     `json:"hasQuantifiedAchievements"`
	QuantifiedCount           int      `json:"quantifiedCount"`
	ExperienceCount           int      `json:"experienceCount"`
	EducationCount            int      `json:"educationCount"`
}

// FormatMetrics describes layout and readability facts about the text.
type FormatMetrics struct {
	WordCount           int      `json:"wordCount"`
	BulletPointCount    int      `json:"bulletPointCount"`
	AverageBulletLength int      `json:"averageBulletLength"`
	ATSIssues           []string `json:"atsIssues"`
}

// JobMatchSignals is populated only when a job description is supplied.
type JobMatchSignals struct {
	JobMatchPercentage *int     `json:"jobMatchPercentage,omitempty"`
	MatchedKeywords    []string `json:"matchedKeywords,omitempty"`
	MissingKeywords    []string `json:"missingKeywords,omitempty"`
}

// Details bundles the raw extractor outputs for callers that want them.
type Details struct {
	Contact    ContactSignals    `json:"contact"`
	Sections   SectionSignals    `json:"sections"`
	Skills     SkillSignals      `json:"skills"`
	Experience ExperienceSignals `json:"experience"`
	Format     FormatMetrics     `json:"format"`
	JobMatch   JobMatchSignals   `json:"jobMatch"`
}

// ScoreBreakdown is the engine's output contract.
type ScoreBreakdown struct {
	Score            int      `json:"score"`
	OverallScore     int      `json:"overallScore"`
	Reason           string   `json:"reason"`
	KeywordMatch     int      `json:"keywordMatch"`
	FormatScore      int      `json:"formatScore"`
	ReadabilityScore int      `json:"readabilityScore"`
	Suggestions      []string `json:"suggestions"`
	MissingKeywords  []string `json:"missingKeywords"`
	StrongPoints     []string `json:"strongPoints"`
	Details          *Details `json:"details,omitempty"`
}

// Output caps for the list fields of ScoreBreakdown.
const (
	maxSuggestions     = 8
	maxMissingKeywords = 10
	maxStrongPoints    = 8
	maxActionVerbs     = 10
)
