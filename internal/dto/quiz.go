package dto

import "docquiz/internal/domain"

// QuestionTypeSelection mirrors the UI's type checkboxes. JSON keys match
// the type tokens used in generated items.
type QuestionTypeSelection struct {
	MCQ         bool `json:"mcq"`
	TrueFalse   bool `json:"trueFalse"`
	ShortAnswer bool `json:"shortAnswer"`
}

// GenerateQuizOptions is the options payload of the generate request
// @Description Generation options supplied alongside the uploaded document
type GenerateQuizOptions struct {
	NumQuestions  int                   `json:"num_questions"`
	QuestionTypes QuestionTypeSelection `json:"question_types"`
	Difficulty    string                `json:"difficulty"`
}

// ToDomain maps the selection to the ordered domain type set.
func (o *GenerateQuizOptions) ToDomain() domain.GenerationOptions {
	var types []domain.QuestionType
	if o.QuestionTypes.MCQ {
		types = append(types, domain.TypeMCQ)
	}
	if o.QuestionTypes.TrueFalse {
		types = append(types, domain.TypeTrueFalse)
	}
	if o.QuestionTypes.ShortAnswer {
		types = append(types, domain.TypeShortAnswer)
	}
	return domain.GenerationOptions{
		NumQuestions:  o.NumQuestions,
		QuestionTypes: types,
		Difficulty:    domain.Difficulty(o.Difficulty),
	}
}

// QuizItemResponse represents one generated item in the API response
type QuizItemResponse struct {
	Stem    string   `json:"stem"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer"`
	Ref     string   `json:"ref"`
}

// GenerateQuizResponse represents the generated quiz in the API response
// @Description Generated quiz items
type GenerateQuizResponse struct {
	Questions []QuizItemResponse `json:"questions"`
}

// ExportQuizRequest represents the export request body
// @Description Request body for exporting a quiz as a PDF document
type ExportQuizRequest struct {
	Questions []QuizItemResponse `json:"questions"`
	Title     string             `json:"title"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromDomainItems maps domain items to their response form.
func FromDomainItems(items []domain.QuizItem) []QuizItemResponse {
	out := make([]QuizItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuizItemResponse{
			Stem:    it.Stem,
			Type:    string(it.Type),
			Options: it.Options,
			Answer:  it.Answer,
			Ref:     it.Ref,
		})
	}
	return out
}

// ToDomainItems maps response-form items back to domain items.
func ToDomainItems(items []QuizItemResponse) []domain.QuizItem {
	out := make([]domain.QuizItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.QuizItem{
			Stem:    it.Stem,
			Type:    domain.QuestionType(it.Type),
			Options: it.Options,
			Answer:  it.Answer,
			Ref:     it.Ref,
		})
	}
	return out
}
