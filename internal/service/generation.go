package service

import (
	"context"
	"fmt"
	"time"

	"docquiz/internal/config"
	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"
	"docquiz/internal/util"

	"go.uber.org/zap"
)

// GenerationService turns an uploaded document into a validated quiz.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, fileName string, payload []byte, opts *dto.GenerateQuizOptions, focusHint string) (*dto.GenerateQuizResponse, error)
}

type generationService struct {
	extractor domain.TextExtractor
	assistant domain.AssistantService
	cfg       *config.Config
}

// NewGenerationService creates a new generation service.
func NewGenerationService(extractor domain.TextExtractor, assistant domain.AssistantService, cfg *config.Config) GenerationService {
	return &generationService{
		extractor: extractor,
		assistant: assistant,
		cfg:       cfg,
	}
}

// GenerateQuiz runs the full pipeline: extract text, compose the task
// specification, drive the remote job to completion, parse the output.
func (s *generationService) GenerateQuiz(ctx context.Context, fileName string, payload []byte, opts *dto.GenerateQuizOptions, focusHint string) (*dto.GenerateQuizResponse, error) {
	corpus, err := s.extractor.Extract(payload)
	if err != nil {
		return nil, err
	}

	domainOpts := opts.ToDomain()
	taskSpec, err := ComposeTaskSpec(domainOpts, focusHint)
	if err != nil {
		return nil, err
	}

	raw, err := s.runAssistantJob(ctx, corpus, taskSpec, fileName)
	if err != nil {
		return nil, err
	}

	items, err := ParseQuizItems(raw)
	if err != nil {
		return nil, err
	}

	// The generator is not contractually bound to the exact count;
	// tolerate a mismatch but make it visible.
	if len(items) != domainOpts.NumQuestions {
		logger.Get().Warn("Generated item count differs from requested",
			zap.Int("requested", domainOpts.NumQuestions),
			zap.Int("generated", len(items)),
			zap.String("file", fileName),
		)
	}

	return &dto.GenerateQuizResponse{Questions: dto.FromDomainItems(items)}, nil
}

// runAssistantJob drives one remote reasoning job through its whole
// lifecycle. Each step depends on the identifier produced by the previous
// one, so the sequence is strictly linear. The handle is local to this
// call; concurrent requests share no orchestration state.
func (s *generationService) runAssistantJob(ctx context.Context, corpus, taskSpec, sourceLabel string) (string, error) {
	var handle domain.RemoteJobHandle
	log := logger.Get()

	// The per-request assistant is the one remote resource that is
	// unbounded in count across requests; reclaim it on every exit path.
	// Deletion runs against a fresh context so a cancelled caller cannot
	// skip cleanup, and its errors are logged, never surfaced.
	defer func() {
		if handle.AssistantID == "" {
			return
		}
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.assistant.DeleteAssistant(cleanupCtx, handle.AssistantID); err != nil {
			log.Error("Failed to delete assistant during cleanup",
				zap.String("assistant_id", handle.AssistantID),
				zap.Error(err),
			)
		}
	}()

	corpusName := fmt.Sprintf("corpus-%s-%s.txt", util.NewULID(), sourceLabel)
	fileID, err := s.assistant.UploadCorpus(ctx, corpusName, corpus)
	if err != nil {
		return "", domain.NewRemoteJobError("Failed to upload source corpus", err)
	}
	handle.CorpusFileID = fileID

	assistantID, err := s.assistant.CreateAssistant(ctx)
	if err != nil {
		return "", domain.NewRemoteJobError("Failed to create generation assistant", err)
	}
	handle.AssistantID = assistantID

	threadID, err := s.assistant.CreateThread(ctx)
	if err != nil {
		return "", domain.NewRemoteJobError("Failed to create conversation thread", err)
	}
	handle.ThreadID = threadID

	if err := s.assistant.AttachMessage(ctx, threadID, fileID, taskSpec); err != nil {
		return "", domain.NewRemoteJobError("Failed to post task message", err)
	}

	runID, err := s.assistant.StartRun(ctx, threadID, assistantID)
	if err != nil {
		return "", domain.NewRemoteJobError("Failed to start generation run", err)
	}

	status, err := s.pollRun(ctx, threadID, runID)
	if err != nil {
		return "", err
	}
	if status != domain.RunCompleted {
		return "", domain.NewRemoteJobError(fmt.Sprintf("Run ended with status: %s", status), nil)
	}

	raw, err := s.assistant.LatestAssistantMessage(ctx, threadID)
	if err != nil {
		return "", domain.NewRemoteJobError("Failed to retrieve run output", err)
	}
	if raw == "" {
		return "", domain.NewRemoteJobError("No valid response from assistant", nil)
	}

	log.Debug("Remote generation run completed",
		zap.String("assistant_id", handle.AssistantID),
		zap.String("thread_id", handle.ThreadID),
		zap.String("run_id", runID),
	)
	return raw, nil
}

// pollRun checks the run status at a fixed interval until it reaches a
// terminal state or the configured deadline passes. The deadline turns a
// never-terminating run into an expired one.
func (s *generationService) pollRun(ctx context.Context, threadID, runID string) (domain.RunStatus, error) {
	deadline := time.Now().Add(s.cfg.Generation.RunTimeout)

	for {
		status, err := s.assistant.RunStatus(ctx, threadID, runID)
		if err != nil {
			return "", domain.NewRemoteJobError("Failed to poll run status", err)
		}
		if status.Terminal() {
			return status, nil
		}
		if time.Now().After(deadline) {
			return "", domain.NewRemoteJobError(fmt.Sprintf("Run ended with status: %s", domain.RunExpired), nil)
		}

		select {
		case <-ctx.Done():
			return "", domain.NewRemoteJobError("Generation cancelled while polling", ctx.Err())
		case <-time.After(s.cfg.Generation.PollInterval):
		}
	}
}
