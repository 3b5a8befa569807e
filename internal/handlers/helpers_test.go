package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

func newTestContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) (ErrorResponse, error) {
	var resp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp, err
}
