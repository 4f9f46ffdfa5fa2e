package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const tikaTimeout = 60 * time.Second

// TikaExtractor extracts text by sending the document to an Apache Tika
// server. Tika handles PDF, DOC, and DOCX (among others) behind one endpoint.
type TikaExtractor struct {
	ServerURL string
	Client    *http.Client
	logger    *zap.Logger
}

var _ Extractor = (*TikaExtractor)(nil)

func NewTikaExtractor(serverURL string, logger *zap.Logger) *TikaExtractor {
	return &TikaExtractor{
		ServerURL: strings.TrimRight(serverURL, "/"),
		Client: &http.Client{
			Timeout: tikaTimeout,
		},
		logger: logger,
	}
}

// ExtractText reads the file and PUTs it to the Tika /tika endpoint asking
// for plain text back. Any failure surfaces as ErrExtraction.
func (e *TikaExtractor) ExtractText(ctx context.Context, filePath, originalFileName string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.ServerURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtraction, err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Content-Type", mimeTypeFor(originalFileName))

	e.logger.Debug("sending document to tika",
		zap.String("file", originalFileName),
		zap.Int("bytes", len(data)),
	)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: tika returned status %d", ErrExtraction, resp.StatusCode)
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExtraction, err)
	}

	return string(text), nil
}

func mimeTypeFor(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
