package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"shareit/app/echoServer/httperr"
	"shareit/app/echoServer/paging"
	"shareit/model"
	requestsvc "shareit/service/request"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc requestsvc.Service
	Log *slog.Logger
}

// Create posts an item request
// @Summary      Add item request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        payload  body  CreateRequestReq  true  "Request payload"
// @Success      200  {object}  model.ItemRequestView
// @Router       /requests [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	v, err := h.Svc.Create(c.Request().Context(), userID(c), req.Description)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

// FindOwn lists the acting user's requests with the items offered against them
// @Summary      List own requests
// @Tags         requests
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Success      200  {array}  model.ItemRequestView
// @Router       /requests [get]
func (h *Controller) FindOwn(c echo.Context) error {
	from, size, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	views, err := h.Svc.FindOwn(c.Request().Context(), userID(c), from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	if views == nil {
		views = []model.ItemRequestView{}
	}
	return c.JSON(http.StatusOK, views)
}

// FindAll lists other users' requests
// @Summary      List all requests of other users
// @Tags         requests
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        from  query  int  false  "Offset"  default(0)
// @Param        size  query  int  false  "Page size"  default(10)
// @Success      200  {array}  model.ItemRequestView
// @Router       /requests/all [get]
func (h *Controller) FindAll(c echo.Context) error {
	from, size, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	views, err := h.Svc.FindAll(c.Request().Context(), userID(c), from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	if views == nil {
		views = []model.ItemRequestView{}
	}
	return c.JSON(http.StatusOK, views)
}

// FindByID returns a single request
// @Summary      Get request
// @Tags         requests
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        requestId  path  int  true  "Request id"
// @Success      200  {object}  model.ItemRequestView
// @Router       /requests/{requestId} [get]
func (h *Controller) FindByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Svc.FindByID(c.Request().Context(), userID(c), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func userID(c echo.Context) int64 {
	id, _ := c.Get("user_id").(int64)
	return id
}
