package booking

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shareit/app/echoServer/httperr"
	"shareit/app/echoServer/paging"
	"shareit/model"
	bookingsvc "shareit/service/booking"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bookingsvc.Service
	Log *slog.Logger
}

// Create books an item
// @Summary      Add booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        payload  body  CreateBookingReq  true  "Booking payload"
// @Success      200  {object}  model.BookingView
// @Failure      400  {object}  map[string]any "item unavailable or bad time range"
// @Failure      404  {object}  map[string]any "unknown user/item or own item"
// @Router       /bookings [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	v, err := h.Svc.Create(c.Request().Context(), userID(c), req.ItemID, req.Start, req.End)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Approve decides a waiting booking; owner only
// @Summary      Approve or reject booking
// @Tags         bookings
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        bookingId  path   int   true  "Booking id"
// @Param        approved   query  bool  true  "true approves, false rejects"
// @Success      200  {object}  model.BookingView
// @Failure      400  {object}  map[string]any "booking already decided"
// @Failure      403  {object}  map[string]any "acting user is not the item's owner"
// @Router       /bookings/{bookingId} [patch]
func (h *Controller) Approve(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "approved must be true or false"})
	}

	v, err := h.Svc.Approve(c.Request().Context(), userID(c), id, approved)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

// FindByID shows a booking to its booker or the item's owner
// @Summary      Get booking
// @Tags         bookings
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        bookingId  path  int  true  "Booking id"
// @Success      200  {object}  model.BookingView
// @Failure      403  {object}  map[string]any
// @Router       /bookings/{bookingId} [get]
func (h *Controller) FindByID(c echo.Context) error {
	id, err := pathID(c, "bookingId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Svc.FindByID(c.Request().Context(), userID(c), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

// ListForBooker lists the acting user's bookings filtered by state
// @Summary      List bookings of current user
// @Tags         bookings
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        state  query  string  false  "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"  default(ALL)
// @Param        from   query  int  false  "Offset"  default(0)
// @Param        size   query  int  false  "Page size"  default(10)
// @Success      200  {array}  model.BookingView
// @Router       /bookings [get]
func (h *Controller) ListForBooker(c echo.Context) error {
	state, from, size, err := listParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	views, err := h.Svc.ListForBooker(c.Request().Context(), userID(c), state, from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	if views == nil {
		views = []model.BookingView{}
	}
	return c.JSON(http.StatusOK, views)
}

// ListForOwner lists bookings of all items the acting user owns
// @Summary      List bookings for owned items
// @Tags         bookings
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        state  query  string  false  "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"  default(ALL)
// @Param        from   query  int  false  "Offset"  default(0)
// @Param        size   query  int  false  "Page size"  default(10)
// @Success      200  {array}  model.BookingView
// @Failure      404  {object}  map[string]any "no bookings match"
// @Router       /bookings/owner [get]
func (h *Controller) ListForOwner(c echo.Context) error {
	state, from, size, err := listParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	views, err := h.Svc.ListForOwner(c.Request().Context(), userID(c), state, from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, views)
}

func listParams(c echo.Context) (model.BookingState, int, int, error) {
	raw := c.QueryParam("state")
	if raw == "" {
		raw = string(model.StateAll)
	}
	state, ok := model.ParseBookingState(strings.ToUpper(raw))
	if !ok {
		return "", 0, 0, unknownStateError(raw)
	}
	from, size, err := paging.Parse(c)
	if err != nil {
		return "", 0, 0, err
	}
	return state, from, size, nil
}

type unknownStateError string

func (e unknownStateError) Error() string { return "Unknown state: " + string(e) }

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func userID(c echo.Context) int64 {
	id, _ := c.Get("user_id").(int64)
	return id
}
