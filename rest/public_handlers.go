package rest

import (
	"net/http"

	"rss-reader/di"

	"github.com/labstack/echo/v4"
)

func RestHandlePublicEntries(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := queryLimit(c)
		if err != nil {
			return handleValidationError(c, err.Error(), "limit", c.QueryParam("limit"))
		}
		entries, err := container.PublicEntriesUsecase.Execute(c.Request().Context(), c.Param("slug"), limit)
		if err != nil {
			return handleError(c, err, "public_entries")
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=300")
		return c.JSON(http.StatusOK, EntriesResponse{Entries: entries})
	}
}
