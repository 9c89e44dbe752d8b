package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductor-hq/conductor/pkg/kanban"
	"github.com/conductor-hq/conductor/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	var held *services.LockHeldError
	if errors.As(err, &held) {
		e := echo.NewHTTPError(http.StatusConflict, held.Error())
		return e
	}
	switch {
	case errors.Is(err, kanban.ErrBadDependency):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, kanban.ErrTaskNotFound),
		errors.Is(err, kanban.ErrAgentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, kanban.ErrNotTeamMember),
		errors.Is(err, kanban.ErrNotAssignee):
		return echo.NewHTTPError(http.StatusForbidden, "operation not permitted")
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, kanban.ErrAlreadyTaken),
		errors.Is(err, kanban.ErrNotClaimable),
		errors.Is(err, kanban.ErrNotInReview):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrResourceLocked):
		return echo.NewHTTPError(http.StatusConflict, "resource locked")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
