package summarizer_port

//go:generate mockgen -source=summarizer_port.go -destination=../../mocks/mock_summarizer_port.go -package=mocks

import "context"

type SummarizerPort interface {
	Summarize(ctx context.Context, text string) (string, error)
}
