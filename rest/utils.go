package rest

import (
	"errors"
	"net/http"
	"strconv"

	"rss-reader/domain"
	apperrors "rss-reader/utils/errors"
	"rss-reader/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// handleError renders err through the shared classification.
func handleError(c echo.Context, err error, operation string) error {
	appErr := apperrors.Classify(err)
	ctx := c.Request().Context()
	status := appErr.HTTPStatusCode()

	if status >= http.StatusInternalServerError {
		apperrors.LogError(logger.Logger, appErr, operation)
	} else {
		logger.Logger.WarnContext(ctx, "REST handler error",
			"operation", operation,
			"error_code", string(appErr.Code),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err)
	}

	return c.JSON(status, appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	appErr := apperrors.ValidationError(message, map[string]interface{}{"field": field})
	logger.Logger.WarnContext(c.Request().Context(), "REST validation error",
		"field", field,
		"value", value,
		"path", c.Request().URL.Path)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// bindAndValidate decodes the body into req and runs its validate tags,
// returning the first problem found.
func bindAndValidate(c echo.Context, req interface{}) *ValidationError {
	if err := c.Bind(req); err != nil {
		return &ValidationError{Field: "body", Tag: "json"}
	}
	if err := c.Validate(req); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		return &ValidationError{Field: "body"}
	}
	return nil
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user.UserID, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID returns nil when the parameter is absent.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return limit, nil
}
