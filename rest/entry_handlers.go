package rest

import (
	"net/http"

	"rss-reader/di"
	"rss-reader/domain"

	"github.com/labstack/echo/v4"
)

func RestHandleListEntries(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		filter := domain.EntryFilter{UserID: userID, Search: c.QueryParam("q")}
		if filter.FeedID, err = queryUUID(c, "feedId"); err != nil {
			return handleValidationError(c, "feedId must be a valid UUID", "feedId", c.QueryParam("feedId"))
		}
		if filter.FolderID, err = queryUUID(c, "folderId"); err != nil {
			return handleValidationError(c, "folderId must be a valid UUID", "folderId", c.QueryParam("folderId"))
		}
		if filter.TagID, err = queryUUID(c, "tagId"); err != nil {
			return handleValidationError(c, "tagId must be a valid UUID", "tagId", c.QueryParam("tagId"))
		}
		if filter.UnreadOnly, err = queryBool(c, "unreadOnly"); err != nil {
			return handleValidationError(c, "unreadOnly must be a boolean", "unreadOnly", c.QueryParam("unreadOnly"))
		}
		if filter.BookmarkedOnly, err = queryBool(c, "bookmarkedOnly"); err != nil {
			return handleValidationError(c, "bookmarkedOnly must be a boolean", "bookmarkedOnly", c.QueryParam("bookmarkedOnly"))
		}
		if filter.Limit, err = queryLimit(c); err != nil {
			return handleValidationError(c, err.Error(), "limit", c.QueryParam("limit"))
		}

		entries, err := container.SearchEntriesUsecase.Execute(c.Request().Context(), filter)
		if err != nil {
			return handleError(c, err, "list_entries")
		}
		return c.JSON(http.StatusOK, EntriesResponse{Entries: entries})
	}
}

func RestHandleMarkEntryRead(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}

		var req MarkReadRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		state, err := container.MarkEntryReadUsecase.Execute(c.Request().Context(), userID, entryID, req.ReadAt)
		if err != nil {
			return handleError(c, err, "mark_entry_read")
		}
		return c.JSON(http.StatusOK, state)
	}
}

func RestHandleMarkEntryUnread(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}

		state, err := container.MarkEntryUnreadUsecase.Execute(c.Request().Context(), userID, entryID)
		if err != nil {
			return handleError(c, err, "mark_entry_unread")
		}
		return c.JSON(http.StatusOK, state)
	}
}

func RestHandleToggleBookmark(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}

		var req BookmarkRequest
		if vErr := bindAndValidate(c, &req); vErr != nil {
			return handleValidationError(c, vErr.Error(), vErr.Field, nil)
		}

		state, err := container.ToggleBookmarkUsecase.Execute(c.Request().Context(), userID, entryID, *req.IsBookmarked)
		if err != nil {
			return handleError(c, err, "toggle_bookmark")
		}
		return c.JSON(http.StatusOK, state)
	}
}

func RestHandleSummarizeEntry(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}

		entry, err := container.SummarizeEntryUsecase.Execute(c.Request().Context(), userID, entryID)
		if err != nil {
			return handleError(c, err, "summarize_entry")
		}
		return c.JSON(http.StatusOK, entry)
	}
}
