package summarizer_gateway

import (
	"context"
	"errors"
	"strings"

	"rss-reader/utils/text"
)

type summarizerClient interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummarizerGateway bounds the input handed to the summarization API.
type SummarizerGateway struct {
	client   summarizerClient
	maxChars int
}

func NewSummarizerGateway(client summarizerClient, maxChars int) *SummarizerGateway {
	return &SummarizerGateway{client: client, maxChars: maxChars}
}

func (g *SummarizerGateway) Summarize(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("nothing to summarize")
	}
	return g.client.Summarize(ctx, text.Truncate(input, g.maxChars))
}
