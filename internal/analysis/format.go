package analysis

import (
	"strings"
	"unicode"
)

// AnalyzeFormat computes word/bullet statistics and flags layout constructs
// known to confuse ATS parsers.
func AnalyzeFormat(text string) FormatMetrics {
	metrics := FormatMetrics{
		WordCount: len(strings.Fields(text)),
		ATSIssues: []string{},
	}

	bulletWords := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		if strings.ContainsRune(bulletGlyphs, runes[0]) {
			metrics.BulletPointCount++
			bulletWords += len(strings.Fields(string(runes[1:])))
		}
	}

	if metrics.BulletPointCount > 0 {
		metrics.AverageBulletLength = bulletWords / metrics.BulletPointCount
	}

	if strings.ContainsAny(text, "|│") {
		metrics.ATSIssues = append(metrics.ATSIssues, "Contains table or column characters (|) that ATS parsers often misread")
	}

	if !strings.ContainsAny(text, bulletGlyphs) && hasNonASCII(text) {
		metrics.ATSIssues = append(metrics.ATSIssues, "Contains special characters without standard bullet points; may indicate exotic formatting")
	}

	return metrics
}

func hasNonASCII(text string) bool {
	for _, r := range text {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
