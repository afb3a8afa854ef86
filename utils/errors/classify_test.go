package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"rss-reader/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{name: "invalid url", err: &domain.InvalidFeedURLError{URL: "x", Reason: "bad"}, wantCode: ErrCodeValidation, wantStatus: http.StatusBadRequest},
		{name: "wrapped fetch error", err: fmt.Errorf("register: %w", &domain.FetchError{URL: "https://e.com", StatusCode: 500}), wantCode: ErrCodeExternalAPI, wantStatus: http.StatusBadGateway},
		{name: "entry not found", err: &domain.EntryNotFoundError{EntryID: uuid.New()}, wantCode: ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "public profile", err: domain.ErrPublicProfileNotFound, wantCode: ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "empty tag", err: domain.ErrEmptyTagName, wantCode: ErrCodeValidation, wantStatus: http.StatusBadRequest},
		{name: "sync in progress", err: domain.ErrSyncInProgress, wantCode: ErrCodeConflict, wantStatus: http.StatusConflict},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: ErrCodeTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "unknown", err: fmt.Errorf("boom"), wantCode: ErrCodeUnknown, wantStatus: http.StatusInternalServerError},
		{name: "already app error", err: DatabaseError("db down", nil, nil), wantCode: ErrCodeDatabase, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := Classify(tt.err)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatusCode())
		})
	}

	assert.Nil(t, Classify(nil))
}

func TestToHTTPResponse_OmitsCause(t *testing.T) {
	appErr := UnknownError("internal server error", fmt.Errorf("password=secret"), nil)
	resp := appErr.ToHTTPResponse()
	assert.Equal(t, "UNKNOWN_ERROR", resp.Code)
	assert.NotContains(t, resp.Message, "secret")
}
