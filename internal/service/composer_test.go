package service

import (
	"os"
	"strings"
	"testing"

	"docquiz/internal/config"
	"docquiz/internal/domain"
	"docquiz/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

func validOptions() domain.GenerationOptions {
	return domain.GenerationOptions{
		NumQuestions:  5,
		QuestionTypes: []domain.QuestionType{domain.TypeMCQ, domain.TypeShortAnswer},
		Difficulty:    domain.DifficultyEasy,
	}
}

// itemTypesLine extracts the ITEM-TYPE(S) parameter line from a task spec.
func itemTypesLine(t *testing.T, spec string) string {
	t.Helper()
	for _, line := range strings.Split(spec, "\n") {
		if strings.Contains(line, "ITEM-TYPE(S):") {
			return line
		}
	}
	t.Fatalf("task spec has no ITEM-TYPE(S) line:\n%s", spec)
	return ""
}

func TestComposeTaskSpec_DifficultyCalibration(t *testing.T) {
	cases := []struct {
		difficulty  domain.Difficulty
		label       string
		calibration string
	}{
		{domain.DifficultyEasy, "Beginner", "recall and basic understanding"},
		{domain.DifficultyMedium, "Intermediate", "application and light analysis"},
		{domain.DifficultyHard, "Expert", "synthesis, evaluation, and edge-case reasoning"},
	}

	for _, tc := range cases {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			opts := validOptions()
			opts.Difficulty = tc.difficulty

			spec, err := ComposeTaskSpec(opts, "")
			require.NoError(t, err)
			assert.Contains(t, spec, "LEVEL: "+tc.label)
			assert.Contains(t, spec, tc.calibration)
		})
	}
}

func TestComposeTaskSpec_TypeLabels(t *testing.T) {
	opts := domain.GenerationOptions{
		NumQuestions:  3,
		QuestionTypes: []domain.QuestionType{domain.TypeMCQ, domain.TypeTrueFalse, domain.TypeShortAnswer},
		Difficulty:    domain.DifficultyMedium,
	}

	spec, err := ComposeTaskSpec(opts, "")
	require.NoError(t, err)

	line := itemTypesLine(t, spec)
	assert.Equal(t, 1, strings.Count(line, "MCQ"))
	assert.Equal(t, 1, strings.Count(line, "True/False"))
	assert.Equal(t, 1, strings.Count(line, "Short-Answer"))
}

func TestComposeTaskSpec_SingleType(t *testing.T) {
	opts := validOptions()
	opts.QuestionTypes = []domain.QuestionType{domain.TypeTrueFalse}

	spec, err := ComposeTaskSpec(opts, "")
	require.NoError(t, err)

	line := itemTypesLine(t, spec)
	assert.Contains(t, line, "True/False")
	assert.NotContains(t, line, "MCQ")
	assert.NotContains(t, line, "Short-Answer")
}

func TestComposeTaskSpec_EmptyTypes(t *testing.T) {
	opts := validOptions()
	opts.QuestionTypes = nil

	_, err := ComposeTaskSpec(opts, "")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidOptions, domainErr.Code)
}

func TestComposeTaskSpec_UnknownDifficulty(t *testing.T) {
	opts := validOptions()
	opts.Difficulty = "impossible"

	_, err := ComposeTaskSpec(opts, "")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidOptions, domainErr.Code)
}

func TestComposeTaskSpec_UnknownType(t *testing.T) {
	opts := validOptions()
	opts.QuestionTypes = []domain.QuestionType{"essay"}

	_, err := ComposeTaskSpec(opts, "")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidOptions, domainErr.Code)
}

func TestComposeTaskSpec_FocusHint(t *testing.T) {
	withHint, err := ComposeTaskSpec(validOptions(), "photosynthesis")
	require.NoError(t, err)
	assert.Contains(t, withHint, "focus area")
	assert.Contains(t, withHint, "photosynthesis")

	withoutHint, err := ComposeTaskSpec(validOptions(), "")
	require.NoError(t, err)
	assert.NotContains(t, withoutHint, "focus area")
}

func TestComposeTaskSpec_Deterministic(t *testing.T) {
	first, err := ComposeTaskSpec(validOptions(), "chapter 2")
	require.NoError(t, err)
	second, err := ComposeTaskSpec(validOptions(), "chapter 2")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeTaskSpec_OutputContract(t *testing.T) {
	spec, err := ComposeTaskSpec(validOptions(), "")
	require.NoError(t, err)

	assert.Contains(t, spec, `"questions"`)
	assert.Contains(t, spec, `"stem"`)
	assert.Contains(t, spec, "NUMBER OF ITEMS: 5")
	assert.Contains(t, spec, "paraphrase")
}
