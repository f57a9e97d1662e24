package service

import (
	"encoding/json"
	"strings"

	"docquiz/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// quizSchema is the structural contract the generator's output must meet
// before item-level invariants are checked. Any change here must be
// mirrored in the output-shape section of ComposeTaskSpec.
const quizSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["stem", "type", "answer"],
				"properties": {
					"stem": {"type": "string", "minLength": 1},
					"type": {"type": "string", "enum": ["mcq", "trueFalse", "shortAnswer"]},
					"options": {"type": "array", "items": {"type": "string"}},
					"answer": {"type": "string", "minLength": 1},
					"ref": {"type": "string"}
				}
			}
		}
	}
}`

var compiledQuizSchema = jsonschema.MustCompileString("quiz.json", quizSchema)

type quizPayload struct {
	Questions []domain.QuizItem `json:"questions"`
}

// ParseQuizItems extracts the validated item list from the generator's raw
// textual output. The whole parse fails on any structurally invalid
// element; a corrupted quiz is never returned as a partial success.
func ParseQuizItems(raw string) ([]domain.QuizItem, error) {
	cleaned := stripCodeFences(raw)

	var generic any
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return nil, domain.NewMalformedOutputError("Generator returned invalid JSON", err)
	}
	if err := compiledQuizSchema.Validate(generic); err != nil {
		return nil, domain.NewMalformedOutputError("Generator output does not match the quiz schema", err)
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, domain.NewMalformedOutputError("Generator returned invalid JSON", err)
	}

	// Schema validation covers field presence and types; item-level
	// invariants (MCQ option count, answer labels) still need a pass.
	for i := range payload.Questions {
		if err := payload.Questions[i].Validate(); err != nil {
			return nil, domain.NewMalformedOutputError("Generator returned an invalid quiz item", err)
		}
	}

	// Generator order is document-traversal order; keep it.
	items := payload.Questions
	if items == nil {
		items = []domain.QuizItem{}
	}
	return items, nil
}

// stripCodeFences tolerates the generator wrapping its JSON in markdown
// fence tokens, with or without a language tag.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 && strings.EqualFold(strings.TrimSpace(s[:idx]), "json") {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
