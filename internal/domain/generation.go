package domain

import "context"

// RunStatus mirrors the remote run's lifecycle status.
type RunStatus string

const (
	RunQueued    RunStatus = "queued"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
	RunExpired   RunStatus = "expired"
	RunCancelled RunStatus = "cancelled"
)

// Terminal reports whether the run has finished, successfully or not.
// Unknown in-progress sub-states are treated as non-terminal so the
// orchestrator keeps polling until its own deadline.
func (s RunStatus) Terminal() bool {
	switch s {
	case RunCompleted, RunFailed, RunExpired, RunCancelled:
		return true
	}
	return false
}

// RemoteJobHandle bundles the identifiers of resources created on the
// remote service during one generation request. It is owned by a single
// orchestrator run and must not outlive it.
type RemoteJobHandle struct {
	CorpusFileID string
	AssistantID  string
	ThreadID     string
}

// AssistantService is the port over the remote reasoning service, one
// method per lifecycle step so the orchestrator's state machine can be
// exercised against a fake without network access.
type AssistantService interface {
	// UploadCorpus submits the extracted source text as a named artifact
	// for retrieval-augmented use and returns its file ID.
	UploadCorpus(ctx context.Context, name string, text string) (string, error)

	// CreateAssistant defines a one-shot generation job bound to a fixed
	// model with a file-search capability and structured-JSON output.
	CreateAssistant(ctx context.Context) (string, error)

	// DeleteAssistant tears down the per-request job definition.
	DeleteAssistant(ctx context.Context, assistantID string) error

	// CreateThread opens a new, empty conversation.
	CreateThread(ctx context.Context) (string, error)

	// AttachMessage posts the task specification as the sole user message,
	// with the uploaded corpus attached as a retrievable resource.
	AttachMessage(ctx context.Context, threadID, fileID, taskSpec string) error

	// StartRun submits a run of the assistant against the thread.
	StartRun(ctx context.Context, threadID, assistantID string) (string, error)

	// RunStatus reports the run's current lifecycle status.
	RunStatus(ctx context.Context, threadID, runID string) (RunStatus, error)

	// LatestAssistantMessage returns the text content of the most recent
	// assistant-authored message in the thread.
	LatestAssistantMessage(ctx context.Context, threadID string) (string, error)
}

// TextExtractor decodes a source document's binary payload into plain text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// QuizExporter renders a finished item list into a downloadable document.
type QuizExporter interface {
	Render(items []QuizItem, title string) ([]byte, error)
}
