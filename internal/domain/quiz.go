package domain

import "fmt"

// QuestionType identifies the shape of a generated quiz item.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "trueFalse"
	TypeShortAnswer QuestionType = "shortAnswer"
)

// IsValid reports whether the type is one of the supported question shapes.
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeMCQ, TypeTrueFalse, TypeShortAnswer:
		return true
	}
	return false
}

// Difficulty is the requested cognitive depth of a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const (
	MinQuestions = 1
	MaxQuestions = 20

	// MCQOptionCount is the fixed number of choices for an MCQ item.
	MCQOptionCount = 4
)

// GenerationOptions is the immutable per-request generation input.
type GenerationOptions struct {
	NumQuestions  int
	QuestionTypes []QuestionType
	Difficulty    Difficulty
}

// QuizItem is one generated assessment item with its source citation.
type QuizItem struct {
	Stem    string       `json:"stem"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
	Answer  string       `json:"answer"`
	Ref     string       `json:"ref"`
}

// mcqAnswers are the legal answer labels for an MCQ item.
var mcqAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// Validate checks the structural invariants of a single item.
func (q *QuizItem) Validate() error {
	if q.Stem == "" {
		return fmt.Errorf("item has empty stem")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("item has unknown type %q", q.Type)
	}
	if q.Answer == "" {
		return fmt.Errorf("item %q has empty answer", q.Stem)
	}
	if q.Type == TypeMCQ {
		if len(q.Options) != MCQOptionCount {
			return fmt.Errorf("mcq item %q has %d options, want %d", q.Stem, len(q.Options), MCQOptionCount)
		}
		if !mcqAnswers[q.Answer] {
			return fmt.Errorf("mcq item %q has answer %q, want one of A-D", q.Stem, q.Answer)
		}
	}
	return nil
}
