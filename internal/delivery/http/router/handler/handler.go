// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"io"
	"strconv"
	"time"

	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/infra/upload"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is how the storefront sends window dates in form fields.
const dateLayout = "2006-01-02"

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidRequest.WithDetails(fmt.Sprintf("parámetro %s no válido", name))
	}

	return id, nil
}

// queryID reads an optional positive integer query parameter. A missing
// parameter returns nil.
func queryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domainerrors.ErrInvalidRequest.WithDetails(fmt.Sprintf("parámetro %s no válido", name))
	}

	return &id, nil
}

// formDate reads an optional yyyy-mm-dd form field.
func formDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidRequest.WithDetails(fmt.Sprintf("fecha %s no válida", name))
	}

	return &t, nil
}

// saveImage stores the uploaded "imagen" form file and returns the stored
// file name. Returns "" when the request carries no file and required is
// false; a missing required file is an InvalidRequest.
func saveImage(c echo.Context, store upload.Store, required bool) (string, error) {
	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		if required {
			return "", domainerrors.ErrInvalidRequest.WithDetails("falta la imagen")
		}

		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded image")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", errors.Wrap(err, "failed to read uploaded image")
	}

	fileName, err := store.Save(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store uploaded image")
	}

	return fileName, nil
}
