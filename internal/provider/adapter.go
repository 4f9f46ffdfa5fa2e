package provider

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/utils"
	"go.uber.org/zap"
)

// Terminal failures of the remote path. These are never downgraded to the
// mock fallback: a broken configuration must stay visible to the caller.
var (
	ErrInvalidAPIKey       = errors.New("Invalid API key")
	ErrInsufficientCredits = errors.New("Insufficient API credits")
	ErrPollTimeout         = errors.New("Timeout waiting for results")
)

const (
	defaultPollInterval = 2 * time.Second
	defaultPollAttempts = 10
)

// Adapter drives a scoring request through the remote provider, polling for
// deferred results and falling back to the local mock scorer on transient
// failures.
type Adapter struct {
	client *Client
	mock   *MockScorer
	logger *zap.Logger

	PollInterval time.Duration
	PollAttempts int
}

// NewAdapter wires the remote client and the mock fallback together. The
// client may be nil when no provider is configured.
func NewAdapter(client *Client, mock *MockScorer, logger *zap.Logger) *Adapter {
	return &Adapter{
		client:       client,
		mock:         mock,
		logger:       logger,
		PollInterval: defaultPollInterval,
		PollAttempts: defaultPollAttempts,
	}
}

// ScoreResumeByURL submits the resume URL to the provider and returns the
// expanded breakdown. Transient provider failures fall back to the mock
// scorer; 401/402 and polling exhaustion are terminal.
func (a *Adapter) ScoreResumeByURL(ctx context.Context, resumeURL, jobDescription string) (analysis.ScoreBreakdown, error) {
	if a.client == nil || a.client.apiKey == "" {
		a.logger.Info("provider key is not configured; using local mock scoring")
		return a.mock.Generate(), nil
	}

	resp, status, err := a.client.submitScore(ctx, resumeURL, jobDescription)
	if err != nil {
		a.logger.Warn("provider request failed; falling back to local mock scoring", zap.Error(err))
		return a.mock.Generate(), nil
	}

	switch status {
	case 401:
		return analysis.ScoreBreakdown{}, ErrInvalidAPIKey
	case 402:
		return analysis.ScoreBreakdown{}, ErrInsufficientCredits
	}

	if status < 200 || status > 299 {
		a.logger.Warn("provider returned an unexpected status; falling back to local mock scoring",
			zap.Int("status", status),
		)
		return a.mock.Generate(), nil
	}

	if resp != nil && resp.Data != nil {
		return expandProviderScore(resp.Data), nil
	}

	if resp != nil && resp.RequestID != "" {
		return a.poll(ctx, resp.RequestID)
	}

	a.logger.Warn("provider response carried neither data nor request id; falling back to local mock scoring")
	return a.mock.Generate(), nil
}

// poll checks the request status until data arrives or attempts run out.
// Individual poll failures are logged and retried; exhaustion is terminal.
func (a *Adapter) poll(ctx context.Context, requestID string) (analysis.ScoreBreakdown, error) {
	a.logger.Info("provider deferred the result; polling",
		zap.String("request_id", requestID),
		zap.Int("attempts", a.PollAttempts),
		zap.Duration("interval", a.PollInterval),
	)

	for attempt := 1; attempt <= a.PollAttempts; attempt++ {
		if err := utils.WaitFor(ctx, a.PollInterval); err != nil {
			return analysis.ScoreBreakdown{}, err
		}

		resp, err := a.client.pollScore(ctx, requestID)
		if err != nil {
			a.logger.Debug("poll attempt failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		if resp != nil && resp.Data != nil {
			return expandProviderScore(resp.Data), nil
		}
	}

	return analysis.ScoreBreakdown{}, ErrPollTimeout
}

// Generic feedback appended when the provider returns only a bare score.
var (
	lowScoreSuggestions = []string{
		"Improve keyword coverage for the roles you target",
		"Restructure the resume with clear standard sections",
	}
	lowScoreMissingKeywords = []string{"communication", "teamwork", "leadership"}
	midScoreSuggestions     = []string{
		"Add more quantified achievements",
		"Expand the skills section with role-specific tools",
	}
)

// expandProviderScore turns the provider's bare {score, reason} pair into the
// full breakdown shape the local pipeline produces.
func expandProviderScore(data *scoreData) analysis.ScoreBreakdown {
	overall := clamp(int(math.Round(data.Score*10)), 0, 100)

	breakdown := analysis.ScoreBreakdown{
		Score:            clamp(int(math.Round(data.Score)), 1, 10),
		OverallScore:     overall,
		Reason:           data.Reason,
		KeywordMatch:     clamp(overall+5, 0, 100),
		FormatScore:      clamp(overall+10, 0, 100),
		ReadabilityScore: clamp(overall+8, 0, 100),
		Suggestions:      []string{},
		MissingKeywords:  []string{},
		StrongPoints:     []string{},
	}

	if overall >= 70 {
		breakdown.StrongPoints = append(breakdown.StrongPoints, data.Reason)
	} else if data.Reason != "" {
		breakdown.Suggestions = append(breakdown.Suggestions, data.Reason)
	}

	switch {
	case overall < 50:
		breakdown.Suggestions = append(breakdown.Suggestions, lowScoreSuggestions...)
		breakdown.MissingKeywords = append(breakdown.MissingKeywords, lowScoreMissingKeywords...)
	case overall < 70:
		breakdown.Suggestions = append(breakdown.Suggestions, midScoreSuggestions...)
	}

	return breakdown
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
