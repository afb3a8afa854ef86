package rest

import (
	"net/http"

	"rss-reader/di"

	"github.com/labstack/echo/v4"
)

func RestHandleListFolders(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		folders, err := container.FolderUsecase.ListFolders(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "list_folders")
		}
		return c.JSON(http.StatusOK, folders)
	}
}

func RestHandleCreateFolder(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		var req NameRequest
		if vErr := bindAndValidate(c, &req); vErr != nil {
			return handleValidationError(c, vErr.Error(), vErr.Field, nil)
		}
		folder, err := container.FolderUsecase.CreateFolder(c.Request().Context(), userID, req.Name)
		if err != nil {
			return handleError(c, err, "create_folder")
		}
		return c.JSON(http.StatusCreated, folder)
	}
}

func RestHandleDeleteFolder(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}
		folderID, ok := pathUUID(c, "id")
		if !ok {
			return handleValidationError(c, "Invalid folder ID", "id", c.Param("id"))
		}
		if err := container.FolderUsecase.DeleteFolder(c.Request().Context(), userID, folderID); err != nil {
			return handleError(c, err, "delete_folder")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
