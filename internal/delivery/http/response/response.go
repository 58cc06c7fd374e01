// Package response renders the API envelope the frontend depends on.
package response

import (
	"net/http"

	"abgad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Errors     any         `json:"errors,omitempty"`
}

// Pagination is the wire form of a result page's position metadata.
// From and To are null for an empty page.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	From        *int `json:"from"`
	To          *int `json:"to"`
}

// NewPagination converts use case pagination metadata to its wire form.
func NewPagination(meta usecase.Pagination) *Pagination {
	return &Pagination{
		CurrentPage: meta.CurrentPage,
		LastPage:    meta.LastPage,
		PerPage:     meta.PerPage,
		Total:       meta.Total,
		From:        meta.From,
		To:          meta.To,
	}
}

// Success renders a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Paginated renders a successful response with pagination metadata.
func Paginated(c echo.Context, data any, pagination *Pagination) error {
	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Message:    "Success",
		Data:       data,
		Pagination: pagination,
	})
}

// Error renders an error response. errs carries per-field validation messages
// when present and is null otherwise.
func Error(c echo.Context, statusCode int, message string, errs any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// ValidationFailed renders a 422 with per-field messages.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return Error(c, http.StatusUnprocessableEntity, "The given data was invalid.", fields)
}

// BadRequest renders a 400.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message, nil)
}

// NotFound renders a 404.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message, nil)
}

// InternalServerError renders a 500.
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message, nil)
}
