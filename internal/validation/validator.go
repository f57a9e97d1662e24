package validation

import (
	"strings"

	"docquiz/internal/domain"
	"docquiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateOptions validates the options payload of a generate request
func (v *Validator) ValidateGenerateOptions(opts *dto.GenerateQuizOptions) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if opts.NumQuestions < domain.MinQuestions || opts.NumQuestions > domain.MaxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("num_questions", opts.NumQuestions, domain.MinQuestions, domain.MaxQuestions))
	}

	if !opts.QuestionTypes.MCQ && !opts.QuestionTypes.TrueFalse && !opts.QuestionTypes.ShortAnswer {
		errors = append(errors, domain.NewMissingFieldError("question_types"))
	}

	if !domain.Difficulty(opts.Difficulty).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", opts.Difficulty))
	}

	return errors
}

// ValidateExportRequest validates the export request body
func (v *Validator) ValidateExportRequest(req *dto.ExportQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	}
	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}

	return errors
}
