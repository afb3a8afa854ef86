package summarizer_driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rss-reader/utils/logger"
)

const generatePath = "/api/generate"

type payloadModel struct {
	Model   string       `json:"model"`
	Prompt  string       `json:"prompt"`
	Options optionsModel `json:"options"`
	Stream  bool         `json:"stream"`
}

type optionsModel struct {
	Stop        []string `json:"stop"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	NumPredict  int      `json:"num_predict"`
	NumCtx      int      `json:"num_ctx"`
}

type OllamaResponse struct {
	Model      string `json:"model"`
	Response   string `json:"response"`
	DoneReason string `json:"done_reason"`
	Done       bool   `json:"done"`
}

const promptTemplate = `<start_of_turn>user
Summarize the following feed entry in %s in at most five sentences.
Keep the key facts and leave out opinions that are not in the text.

ENTRY:
---
%s
---

Begin directly with the summary without any preamble.
<end_of_turn>
<start_of_turn>model
`

// SummarizerClient calls an Ollama-compatible /api/generate endpoint.
type SummarizerClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	language   string
	timeout    time.Duration
}

func NewSummarizerClient(httpClient *http.Client, baseURL, model, language string, timeout time.Duration) *SummarizerClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if language == "" {
		language = "English"
	}
	return &SummarizerClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		language:   language,
		timeout:    timeout,
	}
}

func (c *SummarizerClient) Summarize(ctx context.Context, text string) (string, error) {
	payload := payloadModel{
		Model:  c.model,
		Prompt: fmt.Sprintf(promptTemplate, c.language, text),
		Stream: false,
		Options: optionsModel{
			Temperature: 0.0,
			TopP:        0.9,
			NumPredict:  500,
			NumCtx:      8192,
			Stop:        []string{"<|user|>", "<|system|>"},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	apiURL := c.baseURL + generatePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to send summarize request", "error", err, "api_url", apiURL)
		return "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Logger.ErrorContext(ctx, "failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Logger.ErrorContext(ctx, "API returned non-200 status", "status", resp.Status, "body", string(bodyBytes))
		return "", fmt.Errorf("API request failed with status: %s", resp.Status)
	}

	var apiResponse OllamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if !apiResponse.Done {
		logger.Logger.WarnContext(ctx, "Received incomplete response from API")
	}

	summary := cleanSummarizedContent(apiResponse.Response)
	if summary == "" {
		return "", fmt.Errorf("API returned an empty summary")
	}

	return summary, nil
}

func cleanSummarizedContent(content string) string {
	content = strings.ReplaceAll(content, "<|system|>", "")
	content = strings.ReplaceAll(content, "<|user|>", "")
	content = strings.ReplaceAll(content, "<end_of_turn>", "")
	return strings.TrimSpace(content)
}
