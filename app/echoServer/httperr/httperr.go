// Package httperr maps coded domain errors onto HTTP responses with the
// `{"error": "<message>"}` body every endpoint uses.
package httperr

import (
	"log/slog"
	"net/http"

	"shareit/util/apperr"

	"github.com/labstack/echo/v4"
)

func Respond(c echo.Context, log *slog.Logger, err error) error {
	switch apperr.Code(err) {
	case apperr.ErrNotFound, apperr.ErrSelfBooking:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case apperr.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case apperr.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case apperr.ErrUnavailable, apperr.ErrBadTimeRange, apperr.ErrAlreadyDecided,
		apperr.ErrEmptyComment, apperr.ErrNotBooker, apperr.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		// Unknown → 500, details only in logs.
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		log.Error("request failed",
			"err", err,
			"req_id", rid,
			"path", c.Path(),
			"method", c.Request().Method,
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
