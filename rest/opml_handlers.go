package rest

import (
	"io"
	"net/http"
	"strings"

	"rss-reader/di"

	"github.com/labstack/echo/v4"
)

const maxOPMLBytes = 5 << 20

func RestHandleImportOPML(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		document, err := readOPMLDocument(c)
		if err != nil {
			return handleValidationError(c, "OPML document could not be read", "file", err.Error())
		}
		if len(strings.TrimSpace(string(document))) == 0 {
			return handleValidationError(c, "OPML document is empty", "file", nil)
		}

		result, err := container.ImportOPMLUsecase.Execute(c.Request().Context(), userID, document)
		if err != nil {
			return handleError(c, err, "import_opml")
		}
		return c.JSON(http.StatusOK, result)
	}
}

// readOPMLDocument accepts either a multipart upload named "file" or the raw request body.
func readOPMLDocument(c echo.Context) ([]byte, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(io.LimitReader(file, maxOPMLBytes))
	}
	return io.ReadAll(io.LimitReader(c.Request().Body, maxOPMLBytes))
}
