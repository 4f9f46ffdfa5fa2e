// Package extract converts uploaded resume files (PDF, DOC, DOCX) into plain
// text for the analyzer.
package extract

import (
	"context"
	"errors"
)

// ErrExtraction is the generic failure surfaced for any extraction problem.
var ErrExtraction = errors.New("could not extract text from file")

// Extractor is the contract for binary-to-text conversion.
type Extractor interface {
	ExtractText(ctx context.Context, filePath, originalFileName string) (string, error)
}
