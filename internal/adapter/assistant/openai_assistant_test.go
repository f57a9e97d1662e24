package assistant

import (
	"testing"

	"docquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIAssistantService(t *testing.T) {
	client := openai.NewClient("test-key")

	svc, err := NewOpenAIAssistantService(client, "gpt-4o")
	require.NoError(t, err)
	assert.NotNil(t, svc)

	_, err = NewOpenAIAssistantService(nil, "gpt-4o")
	assert.Error(t, err)

	_, err = NewOpenAIAssistantService(client, "")
	assert.Error(t, err)
}

func TestMapRunStatus(t *testing.T) {
	cases := []struct {
		remote openai.RunStatus
		want   domain.RunStatus
	}{
		{openai.RunStatusQueued, domain.RunQueued},
		{openai.RunStatusInProgress, domain.RunRunning},
		{openai.RunStatusRequiresAction, domain.RunRunning},
		{openai.RunStatusCancelling, domain.RunRunning},
		{openai.RunStatusCompleted, domain.RunCompleted},
		{openai.RunStatusFailed, domain.RunFailed},
		{openai.RunStatusIncomplete, domain.RunFailed},
		{openai.RunStatusExpired, domain.RunExpired},
		{openai.RunStatusCancelled, domain.RunCancelled},
	}

	for _, tc := range cases {
		t.Run(string(tc.remote), func(t *testing.T) {
			assert.Equal(t, tc.want, mapRunStatus(tc.remote))
		})
	}
}

func TestMapRunStatus_TerminalAgreement(t *testing.T) {
	// Every status the adapter can emit must have a defined terminal
	// classification; unknown remote statuses stay non-terminal.
	assert.False(t, mapRunStatus(openai.RunStatus("something_new")).Terminal())
}
