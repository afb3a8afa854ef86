package rest

import (
	"net/http"

	"rss-reader/di"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func RestHandleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		feeds, err := container.ListFeedsUsecase.Execute(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		return c.JSON(http.StatusOK, feeds)
	}
}

func RestHandleRegisterFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		var req RegisterFeedRequest
		if vErr := bindAndValidate(c, &req); vErr != nil {
			return handleValidationError(c, vErr.Error(), vErr.Field, nil)
		}

		var folderID *uuid.UUID
		if req.FolderID != nil {
			id := uuid.MustParse(*req.FolderID)
			folderID = &id
		}

		result, err := container.RegisterFeedUsecase.Execute(c.Request().Context(), userID, req.URL, folderID)
		if err != nil {
			return handleError(c, err, "register_feed")
		}

		c.Response().Header().Set("Cache-Control", "no-cache")
		return c.JSON(http.StatusCreated, result)
	}
}
