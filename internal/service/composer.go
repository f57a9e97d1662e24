package service

import (
	"fmt"
	"strings"

	"docquiz/internal/domain"
)

// difficultyDescriptors maps each difficulty to its calibration label and
// cognitive-depth instruction. The mapping is a closed enumeration.
var difficultyDescriptors = map[domain.Difficulty]struct {
	Label       string
	Calibration string
}{
	domain.DifficultyEasy: {
		Label:       "Beginner",
		Calibration: "Focus on recall and basic understanding of the material as presented.",
	},
	domain.DifficultyMedium: {
		Label:       "Intermediate",
		Calibration: "Focus on application and light analysis, requiring the reader to connect concepts.",
	},
	domain.DifficultyHard: {
		Label:       "Expert",
		Calibration: "Focus on synthesis, evaluation, and edge-case reasoning, challenging the reader to apply material to new scenarios.",
	},
}

// typeLabels maps question types to their human-readable prompt labels.
var typeLabels = map[domain.QuestionType]string{
	domain.TypeMCQ:         "MCQ",
	domain.TypeTrueFalse:   "True/False",
	domain.TypeShortAnswer: "Short-Answer",
}

// ComposeTaskSpec builds the deterministic task specification sent to the
// generation assistant. It is pure: same options and focus hint always
// yield the same string.
func ComposeTaskSpec(opts domain.GenerationOptions, focusHint string) (string, error) {
	descriptor, ok := difficultyDescriptors[opts.Difficulty]
	if !ok {
		return "", domain.NewInvalidOptionsError(fmt.Sprintf("Unrecognized difficulty: %q", opts.Difficulty))
	}

	if len(opts.QuestionTypes) == 0 {
		return "", domain.NewInvalidOptionsError("At least one question type must be selected")
	}
	labels := make([]string, 0, len(opts.QuestionTypes))
	for _, t := range opts.QuestionTypes {
		label, ok := typeLabels[t]
		if !ok {
			return "", domain.NewInvalidOptionsError(fmt.Sprintf("Unrecognized question type: %q", t))
		}
		labels = append(labels, label)
	}

	var sb strings.Builder
	sb.WriteString("You are a professional assessment-item writer.\n")

	if focusHint != "" {
		sb.WriteString(fmt.Sprintf("IMPORTANT: The user has specified a focus area. Prioritize generating questions from the parts of the document related to: %q.\n", focusHint))
	}

	sb.WriteString("\nTASK:\n")
	sb.WriteString("1. Read the provided source document.\n")
	sb.WriteString("2. For the given cognitive LEVEL, calibrate the depth and phrasing of your questions:\n")
	sb.WriteString("   - Beginner: Focus on recall and basic understanding of the material as presented.\n")
	sb.WriteString("   - Intermediate: Focus on application and light analysis, requiring the reader to connect concepts.\n")
	sb.WriteString("   - Expert: Focus on synthesis, evaluation, and edge-case reasoning, challenging the reader to apply material to new scenarios.\n")
	sb.WriteString("3. Write the requested NUMBER of ITEMS in the chosen ITEM-TYPE(S):\n")
	sb.WriteString("   - MCQ: Provide a stem, 4 plausible options (A-D), and identify the single correct answer.\n")
	sb.WriteString("   - True/False: Provide a single, clear assertion.\n")
	sb.WriteString("   - Short-Answer: Create a question where the expected open response is concise (around 30 words).\n")

	sb.WriteString("\nRULES:\n")
	sb.WriteString("- Do not repeat the source content verbatim; paraphrase.\n")
	sb.WriteString("- Cover different sections of the document to ensure broad coverage.\n")
	sb.WriteString("- For MCQs and True/False, ensure distractors are plausible and avoid grammatical clues.\n")
	sb.WriteString("- For the \"ref\" field, provide a page number or other reference from the source.\n")

	sb.WriteString("\nGenerate quiz items for the following parameters, returning the output as a single, valid JSON object.\n")
	sb.WriteString("\nPARAMETERS:\n")
	sb.WriteString(fmt.Sprintf("- LEVEL: %s (%s)\n", descriptor.Label, descriptor.Calibration))
	sb.WriteString(fmt.Sprintf("- ITEM-TYPE(S): %s\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("- NUMBER OF ITEMS: %d\n", opts.NumQuestions))

	sb.WriteString("\nThe JSON object must have a single key \"questions\", containing an array of question objects with this exact structure:\n")
	sb.WriteString(`{
  "stem": "Full text of the question",
  "type": "mcq, trueFalse, or shortAnswer",
  "options": ["Array of choices for mcq type"],
  "answer": "The correct answer. For mcq, use 'A', 'B', etc.",
  "ref": "Citation from source document"
}` + "\n")

	return sb.String(), nil
}
