// Package analysis sends exported contribution data to a language model and
// returns its written assessment.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/wttj/ic-metrics/internal/app"
)

const defaultModel = openai.GPT4o

// Request carries everything one analysis run needs.
type Request struct {
	Username     string
	SystemPrompt string
	// CSVFiles maps file name to file content.
	CSVFiles map[string]string
}

// completionClient is the slice of the openai client the analyzer uses.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Analyzer produces a narrative report over exported CSV data.
type Analyzer struct {
	client completionClient
	model  string

	l log.FieldLogger
}

// NewAnalyzer creates an Analyzer using the given api key. An empty model
// selects the default.
func NewAnalyzer(apiKey, model string, l log.FieldLogger) (*Analyzer, error) {
	if apiKey == "" {
		return nil, &app.ConfigurationError{Message: "openai api key is required for analysis"}
	}
	if model == "" {
		model = defaultModel
	}

	return &Analyzer{
		client: openai.NewClient(apiKey),
		model:  model,
		l:      l.WithField("component", "analyzer"),
	}, nil
}

// Analyze submits the CSV data with the system prompt and returns the model's
// report.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (string, error) {
	if len(req.CSVFiles) == 0 {
		return "", &app.DataNotFoundError{Username: req.Username}
	}

	content := buildUserMessage(req)
	a.l.WithFields(log.Fields{
		"username": req.Username,
		"files":    len(req.CSVFiles),
		"bytes":    len(content),
	}).Info("requesting analysis")

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildUserMessage assembles the user message from the CSV files, splitting
// oversized files into parts at line boundaries. Files are included in name
// order so repeated runs produce identical prompts.
func buildUserMessage(req Request) string {
	names := make([]string, 0, len(req.CSVFiles))
	for name := range req.CSVFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the contribution data for developer %q.\n", req.Username)
	for _, name := range names {
		chunks := ChunkContent(req.CSVFiles[name], maxFragmentSize)
		for i, chunk := range chunks {
			fmt.Fprintf(&b, "\n--- %s ---\n", PartName(name, i, len(chunks)))
			b.WriteString(chunk)
			if !strings.HasSuffix(chunk, "\n") {
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
