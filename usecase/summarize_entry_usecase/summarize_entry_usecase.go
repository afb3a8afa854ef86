package summarize_entry_usecase

import (
	"context"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/summarizer_port"
	"rss-reader/utils/logger"
	"rss-reader/utils/text"

	"github.com/google/uuid"
)

type SummarizeEntryUsecase struct {
	entryRepo  entry_port.EntryRepositoryPort
	summarizer summarizer_port.SummarizerPort
}

func NewSummarizeEntryUsecase(entryRepo entry_port.EntryRepositoryPort, summarizer summarizer_port.SummarizerPort) *SummarizeEntryUsecase {
	return &SummarizeEntryUsecase{entryRepo: entryRepo, summarizer: summarizer}
}

// Execute returns the entry with a summary, generating and storing one only
// when none exists yet.
func (u *SummarizeEntryUsecase) Execute(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := u.entryRepo.FindByIDForUser(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	if entry == nil {
		return nil, &domain.EntryNotFoundError{EntryID: entryID}
	}
	if entry.HasSummary() {
		return entry, nil
	}

	source := ""
	if entry.Content != nil {
		source = text.ExtractText(*entry.Content)
	}
	if source == "" {
		source = entry.Title
	}

	summary, err := u.summarizer.Summarize(ctx, source)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to summarize entry", "entry_id", entryID, "error", err)
		return nil, err
	}

	updated, err := u.entryRepo.UpdateSummary(ctx, entryID, summary)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to store summary", "entry_id", entryID, "error", err)
		return nil, fmt.Errorf("update summary: %w", err)
	}
	// keep the caller's per-user state
	updated.IsRead = entry.IsRead
	updated.IsBookmarked = entry.IsBookmarked
	return updated, nil
}
