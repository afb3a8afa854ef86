package rest

import (
	"net/http"

	"rss-reader/di"

	"github.com/labstack/echo/v4"
)

func RestHandleListTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		tags, err := container.TagUsecase.ListTags(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "list_tags")
		}
		return c.JSON(http.StatusOK, tags)
	}
}

func RestHandleCreateTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req NameRequest
		if vErr := bindAndValidate(c, &req); vErr != nil {
			return handleValidationError(c, vErr.Error(), vErr.Field, nil)
		}
		tag, err := container.TagUsecase.CreateTag(c.Request().Context(), userID, req.Name)
		if err != nil {
			return handleError(c, err, "create_tag")
		}
		return c.JSON(http.StatusCreated, tag)
	}
}

func RestHandleDeleteTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		tagID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid tag ID", "id", c.Param("id"))
		}
		if err := container.TagUsecase.DeleteTag(c.Request().Context(), userID, tagID); err != nil {
			return handleError(c, err, "delete_tag")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func RestHandleEntriesByTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		tagID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid tag ID", "id", c.Param("id"))
		}
		limit, err := queryLimit(c)
		if err != nil {
			return handleValidationError(c, err.Error(), "limit", c.QueryParam("limit"))
		}
		entries, err := container.TagUsecase.GetEntriesByTag(c.Request().Context(), userID, tagID, limit)
		if err != nil {
			return handleError(c, err, "entries_by_tag")
		}
		return c.JSON(http.StatusOK, EntriesResponse{Entries: entries})
	}
}

func RestHandleAddTagToEntry(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}
		tagID, ok := pathUUID(c, "tagId")
		if !ok {
			return handleValidationError(c, "Invalid tag ID", "tagId", c.Param("tagId"))
		}
		if err := container.TagUsecase.AddTagToEntry(c.Request().Context(), userID, entryID, tagID); err != nil {
			return handleError(c, err, "add_tag_to_entry")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func RestHandleRemoveTagFromEntry(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		entryID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid entry ID", "id", c.Param("id"))
		}
		tagID, ok := pathUUID(c, "tagId")
		if !ok {
			return handleValidationError(c, "Invalid tag ID", "tagId", c.Param("tagId"))
		}
		if err := container.TagUsecase.RemoveTagFromEntry(c.Request().Context(), userID, entryID, tagID); err != nil {
			return handleError(c, err, "remove_tag_from_entry")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
