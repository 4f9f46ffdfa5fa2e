// Package analysis implements the local resume scoring pipeline: a set of
// pure signal extractors over raw resume text, a weighted score aggregator,
// and a rule-based feedback generator. Given identical inputs the pipeline is
// fully deterministic; it never fails, degrading to low scores instead.
package analysis

// AnalyzeResumeText runs the full local pipeline over raw resume text and an
// optional job description (pass the empty string for none). It is total: any
// input, including the empty string, yields a well-formed breakdown.
func AnalyzeResumeText(resumeText, jobDescription string) ScoreBreakdown {
	details := &Details{
		Contact:    DetectContactInfo(resumeText),
		Sections:   DetectSections(resumeText),
		Skills:     DetectSkills(resumeText),
		Experience: DetectExperience(resumeText),
		Format:     AnalyzeFormat(resumeText),
		JobMatch:   MatchJobDescription(resumeText, jobDescription),
	}

	scores := computeSubScores(details)
	overall := overallScore(scores)

	fb := generateFeedback(details)
	details.Format.ATSIssues = append(details.Format.ATSIssues, fb.ATSIssues...)

	missing := details.JobMatch.MissingKeywords
	if missing == nil {
		missing = []string{}
	}

	return ScoreBreakdown{
		Score:            tenPointScore(overall),
		OverallScore:     overall,
		Reason:           reasonForScore(overall),
		KeywordMatch:     finalKeywordMatch(scores, details.JobMatch.JobMatchPercentage),
		FormatScore:      finalFormatScore(scores, details.Format.BulletPointCount),
		ReadabilityScore: readabilityScore(details),
		Suggestions:      fb.Suggestions,
		MissingKeywords:  missing,
		StrongPoints:     fb.StrongPoints,
		Details:          details,
	}
}
