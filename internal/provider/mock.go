package provider

import (
	"math"
	"math/rand"
	"time"

	"github.com/spigell/resume-scorer/internal/analysis"
)

// IntSource yields pseudo-random non-negative integers. *rand.Rand satisfies
// it; tests inject a deterministic source.
type IntSource interface {
	Intn(n int) int
}

// MockScorer produces a plausible local score when the remote provider is
// unconfigured or unreachable. This is the only nondeterministic piece of the
// engine, and the randomness is confined to the injected source.
type MockScorer struct {
	rand IntSource
}

// NewMockScorer creates a mock scorer. A nil source gets a time-seeded one.
func NewMockScorer(src IntSource) *MockScorer {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockScorer{rand: src}
}

// Generate draws an overall score from [65,85) and derives the rest of the
// breakdown from it deterministically.
func (m *MockScorer) Generate() analysis.ScoreBreakdown {
	overall := 65 + m.rand.Intn(20)

	reason := "Good resume with minor areas for improvement"
	if overall >= 80 {
		reason = "Excellent resume with strong ATS compatibility"
	}

	return analysis.ScoreBreakdown{
		Score:            int(math.Round(float64(overall) / 10)),
		OverallScore:     overall,
		Reason:           reason,
		KeywordMatch:     clamp(overall+5, 0, 100),
		FormatScore:      clamp(overall+10, 0, 100),
		ReadabilityScore: clamp(overall+8, 0, 100),
		Suggestions: []string{
			"Tailor the resume to each job description",
			"Quantify achievements with concrete numbers",
		},
		MissingKeywords: []string{},
		StrongPoints: []string{
			"Readable structure with standard sections",
		},
	}
}
