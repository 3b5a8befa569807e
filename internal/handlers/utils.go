package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"fleettrack/internal/export"
	"fleettrack/internal/models"

	"github.com/labstack/echo/v4"
)

// criteriaFrom builds filter criteria from the q and status query parameters;
// an omitted status behaves like "all"
func criteriaFrom(search, status string) models.FilterCriteria {
	return models.NewFilterCriteria().
		WithSearchTerm(search).
		WithStatus(status).
		Normalize()
}

// exportFormat resolves the format query parameter, defaulting to a spreadsheet
func exportFormat(raw string) (export.Format, error) {
	if raw == "" {
		return export.FormatXLSX, nil
	}
	return export.ParseFormat(raw)
}

// sendExport renders an export into memory and serves it as an attachment,
// so a failed export still produces a JSON error instead of a truncated file
func sendExport(
	c echo.Context,
	base string,
	format export.Format,
	write func(ctx context.Context, w io.Writer) (int, error),
) error {
	var buf bytes.Buffer
	if _, err := write(c.Request().Context(), &buf); err != nil {
		return sendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", format.FileName(base)))
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}
