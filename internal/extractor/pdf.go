package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"docquiz/internal/domain"
	"docquiz/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFExtractor decodes PDF payloads into plain text. It implements
// domain.TextExtractor and has no resource lifecycle of its own.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the text of every page in document order, pages
// separated by whitespace. Returns an extraction error when the payload
// is not a parseable PDF.
func (e *PDFExtractor) Extract(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents; turn those
	// into the same extraction error as a regular parse failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.NewExtractionError(fmt.Errorf("pdf parse panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewExtractionError(err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// A single undecodable page should not sink the document.
			logger.Get().Warn("Skipping unreadable PDF page",
				zap.Int("page", i),
				zap.Error(err),
			)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(content)
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", domain.NewExtractionError(fmt.Errorf("document contains no extractable text"))
	}
	return result, nil
}

var _ domain.TextExtractor = (*PDFExtractor)(nil)
