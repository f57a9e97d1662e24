package extractor

import (
	"os"
	"testing"

	"docquiz/internal/config"
	"docquiz/internal/domain"
	"docquiz/internal/export"
	"docquiz/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

func assertExtractionError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExtraction, domainErr.Code)
}

func TestExtract_RoundTripFromRenderedPDF(t *testing.T) {
	items := []domain.QuizItem{
		{Stem: "Define diffusion.", Type: domain.TypeShortAnswer, Answer: "Passive movement of molecules", Ref: "p2"},
	}
	payload, err := export.NewPDFRenderer().Render(items, "Transport Mechanisms")
	require.NoError(t, err)

	text, err := NewPDFExtractor().Extract(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Questions")
}

func TestExtract_GarbagePayload(t *testing.T) {
	_, err := NewPDFExtractor().Extract([]byte("this is definitely not a pdf document"))
	assertExtractionError(t, err)
}

func TestExtract_EmptyPayload(t *testing.T) {
	_, err := NewPDFExtractor().Extract(nil)
	assertExtractionError(t, err)
}

func TestExtract_TruncatedPDF(t *testing.T) {
	items := []domain.QuizItem{
		{Stem: "S", Type: domain.TypeShortAnswer, Answer: "A", Ref: "p1"},
	}
	payload, err := export.NewPDFRenderer().Render(items, "Broken")
	require.NoError(t, err)

	// Cut the document off before the xref table.
	_, err = NewPDFExtractor().Extract(payload[:len(payload)/2])
	assertExtractionError(t, err)
}
