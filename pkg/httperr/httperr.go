// Package httperr maps the shared error taxonomy onto HTTP responses so
// every controller reports failures the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"garden/entities"
)

func JSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entities.ErrValidation):
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
