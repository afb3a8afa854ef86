package errors

import (
	"context"
	stderrors "errors"

	"rss-reader/domain"
)

// Classify maps domain and infrastructure errors onto AppErrors.
// Errors that are already AppErrors are returned unchanged.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var (
		urlErr    *domain.InvalidFeedURLError
		fetchErr  *domain.FetchError
		entryErr  *domain.EntryNotFoundError
		tagErr    *domain.TagNotFoundError
		folderErr *domain.FolderNotFoundError
	)

	switch {
	case stderrors.As(err, &urlErr):
		return ValidationError(urlErr.Error(), map[string]interface{}{"url": urlErr.URL})
	case stderrors.Is(err, domain.ErrEmptyTagName),
		stderrors.Is(err, domain.ErrEmptyFolderName),
		stderrors.Is(err, domain.ErrInvalidOPML):
		return ValidationError(err.Error(), nil)
	case stderrors.As(err, &entryErr), stderrors.As(err, &tagErr), stderrors.As(err, &folderErr),
		stderrors.Is(err, domain.ErrFeedNotFound),
		stderrors.Is(err, domain.ErrPublicProfileNotFound):
		return NotFoundError(err.Error(), err, nil)
	case stderrors.As(err, &fetchErr):
		ctx := map[string]interface{}{"url": fetchErr.URL}
		if fetchErr.StatusCode != 0 {
			ctx["status_code"] = fetchErr.StatusCode
		}
		return ExternalAPIError("failed to fetch feed", err, ctx)
	case stderrors.Is(err, domain.ErrSyncInProgress):
		return ConflictError(err.Error(), err)
	case stderrors.Is(err, context.DeadlineExceeded):
		return TimeoutError("operation timed out", err, nil)
	default:
		return UnknownError("internal server error", err, nil)
	}
}
