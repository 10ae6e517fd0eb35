package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wttj/ic-metrics/internal/app"
)

type fakeCompletionClient struct {
	request  openai.ChatCompletionRequest
	response openai.ChatCompletionResponse
	err      error
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.request = req
	return f.response, f.err
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewAnalyzerRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewAnalyzer("", "", testLogger())
	require.Error(t, err)
	assert.True(t, app.IsConfigurationError(err))
}

func TestAnalyzerAnalyze(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletionClient{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "the report"}},
			},
		},
	}
	a := &Analyzer{client: fake, model: defaultModel, l: testLogger()}

	got, err := a.Analyze(context.Background(), Request{
		Username:     "jane",
		SystemPrompt: "assess quality",
		CSVFiles: map[string]string{
			"commits.csv": "sha,message\naaa,feat: one\n",
			"summary.csv": "metric,value\n",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "the report", got)

	require.Len(t, fake.request.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.request.Messages[0].Role)
	assert.Equal(t, "assess quality", fake.request.Messages[0].Content)

	user := fake.request.Messages[1].Content
	assert.Contains(t, user, `developer "jane"`)
	// Files are included in name order.
	assert.Less(t, strings.Index(user, "--- commits.csv ---"), strings.Index(user, "--- summary.csv ---"))
	assert.Contains(t, user, "feat: one")
}

func TestAnalyzerAnalyzeNoData(t *testing.T) {
	t.Parallel()

	a := &Analyzer{client: &fakeCompletionClient{}, model: defaultModel, l: testLogger()}

	_, err := a.Analyze(context.Background(), Request{Username: "jane"})
	require.Error(t, err)
	assert.True(t, app.IsDataNotFoundError(err))
}

func TestAnalyzerAnalyzeCompletionError(t *testing.T) {
	t.Parallel()

	a := &Analyzer{
		client: &fakeCompletionClient{err: errors.New("api down")},
		model:  defaultModel,
		l:      testLogger(),
	}

	_, err := a.Analyze(context.Background(), Request{
		Username: "jane",
		CSVFiles: map[string]string{"commits.csv": "sha\n"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}
