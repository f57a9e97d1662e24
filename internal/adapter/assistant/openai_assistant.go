package assistant

import (
	"context"
	"fmt"

	"docquiz/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

const (
	assistantName = "Question Generation Assistant"

	// The output-shape contract itself travels in the task spec; the
	// assistant instructions only pin down role and output mode.
	assistantInstructions = "You are an expert exam writer. Your task is to generate questions " +
		"based on the document provided. You must return the response as a single, " +
		"valid JSON object and nothing else."
)

// OpenAIAssistantService implements domain.AssistantService on top of the
// OpenAI Assistants v2 API.
type OpenAIAssistantService struct {
	client *openai.Client
	model  string
}

// NewOpenAIAssistantService creates a new assistant service bound to the
// given generation model.
func NewOpenAIAssistantService(client *openai.Client, model string) (*OpenAIAssistantService, error) {
	if client == nil {
		return nil, fmt.Errorf("openai client cannot be nil")
	}
	if model == "" {
		return nil, fmt.Errorf("generation model cannot be empty")
	}
	return &OpenAIAssistantService{client: client, model: model}, nil
}

func (s *OpenAIAssistantService) UploadCorpus(ctx context.Context, name string, text string) (string, error) {
	file, err := s.client.CreateFileBytes(ctx, openai.FileBytesRequest{
		Name:    name,
		Bytes:   []byte(text),
		Purpose: openai.PurposeAssistants,
	})
	if err != nil {
		return "", fmt.Errorf("upload corpus: %w", err)
	}
	return file.ID, nil
}

func (s *OpenAIAssistantService) CreateAssistant(ctx context.Context) (string, error) {
	name := assistantName
	instructions := assistantInstructions
	created, err := s.client.CreateAssistant(ctx, openai.AssistantRequest{
		Model:        s.model,
		Name:         &name,
		Instructions: &instructions,
		Tools: []openai.AssistantTool{
			{Type: openai.AssistantToolTypeFileSearch},
		},
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	return created.ID, nil
}

func (s *OpenAIAssistantService) DeleteAssistant(ctx context.Context, assistantID string) error {
	if _, err := s.client.DeleteAssistant(ctx, assistantID); err != nil {
		return fmt.Errorf("delete assistant %s: %w", assistantID, err)
	}
	return nil
}

func (s *OpenAIAssistantService) CreateThread(ctx context.Context) (string, error) {
	thread, err := s.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	return thread.ID, nil
}

func (s *OpenAIAssistantService) AttachMessage(ctx context.Context, threadID, fileID, taskSpec string) error {
	_, err := s.client.CreateMessage(ctx, threadID, openai.MessageRequest{
		Role:    string(openai.ThreadMessageRoleUser),
		Content: taskSpec,
		Attachments: []openai.ThreadAttachment{
			{
				FileID: fileID,
				Tools: []openai.ThreadAttachmentTool{
					{Type: string(openai.AssistantToolTypeFileSearch)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("attach message: %w", err)
	}
	return nil
}

func (s *OpenAIAssistantService) StartRun(ctx context.Context, threadID, assistantID string) (string, error) {
	run, err := s.client.CreateRun(ctx, threadID, openai.RunRequest{
		AssistantID: assistantID,
	})
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return run.ID, nil
}

func (s *OpenAIAssistantService) RunStatus(ctx context.Context, threadID, runID string) (domain.RunStatus, error) {
	run, err := s.client.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return "", fmt.Errorf("retrieve run: %w", err)
	}
	return mapRunStatus(run.Status), nil
}

func (s *OpenAIAssistantService) LatestAssistantMessage(ctx context.Context, threadID string) (string, error) {
	// The API returns messages newest-first, so the first assistant
	// message is the run's reply.
	list, err := s.client.ListMessage(ctx, threadID, nil, nil, nil, nil, nil)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	for _, msg := range list.Messages {
		if msg.Role != string(openai.ThreadMessageRoleAssistant) {
			continue
		}
		for _, content := range msg.Content {
			if content.Type == "text" && content.Text != nil {
				return content.Text.Value, nil
			}
		}
	}
	return "", nil
}

// mapRunStatus folds the remote run statuses onto the domain enum.
// In-progress sub-states stay non-terminal so the poll loop keeps going.
func mapRunStatus(status openai.RunStatus) domain.RunStatus {
	switch status {
	case openai.RunStatusQueued:
		return domain.RunQueued
	case openai.RunStatusCompleted:
		return domain.RunCompleted
	case openai.RunStatusFailed, openai.RunStatusIncomplete:
		return domain.RunFailed
	case openai.RunStatusExpired:
		return domain.RunExpired
	case openai.RunStatusCancelled:
		return domain.RunCancelled
	default:
		// in_progress, requires_action, cancelling
		return domain.RunRunning
	}
}

var _ domain.AssistantService = (*OpenAIAssistantService)(nil)
