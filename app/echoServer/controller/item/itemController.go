package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"shareit/app/echoServer/httperr"
	"shareit/app/echoServer/paging"
	"shareit/model"
	itemsvc "shareit/service/item"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc itemsvc.Service
	Log *slog.Logger
}

// Create lists a new item for the acting user
// @Summary      Add item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        payload  body  CreateItemReq  true  "Item payload"
// @Success      200  {object}  model.Item
// @Router       /items [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	it, err := h.Svc.Create(c.Request().Context(), userID(c), itemsvc.ItemCreate{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, it)
}

// Update patches an item; only its owner may do so
// @Summary      Update item
// @Tags         items
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        itemId   path  int  true  "Item id"
// @Param        payload  body  model.ItemPatch  true  "Patch; absent fields keep old values"
// @Success      200  {object}  model.Item
// @Router       /items/{itemId} [patch]
func (h *Controller) Update(c echo.Context) error {
	id, err := pathID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.ItemPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	it, err := h.Svc.Update(c.Request().Context(), userID(c), id, patch)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, it)
}

// FindByID returns an item view; booking neighbors are shown to the owner only
// @Summary      Get item
// @Tags         items
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        itemId  path  int  true  "Item id"
// @Success      200  {object}  model.ItemView
// @Router       /items/{itemId} [get]
func (h *Controller) FindByID(c echo.Context) error {
	id, err := pathID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Svc.FindByID(c.Request().Context(), userID(c), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

// FindAll lists the acting user's items
// @Summary      List own items
// @Tags         items
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        from  query  int  false  "Offset"  default(0)
// @Param        size  query  int  false  "Page size"  default(10)
// @Success      200  {array}  model.ItemView
// @Router       /items [get]
func (h *Controller) FindAll(c echo.Context) error {
	from, size, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	views, err := h.Svc.FindAllForOwner(c.Request().Context(), userID(c), from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	if views == nil {
		views = []model.ItemView{}
	}
	return c.JSON(http.StatusOK, views)
}

// Search finds available items by a text fragment; blank text yields an empty list
// @Summary      Search items
// @Tags         items
// @Param        text  query  string  true  "Search text"
// @Param        from  query  int  false  "Offset"  default(0)
// @Param        size  query  int  false  "Page size"  default(10)
// @Success      200  {array}  model.Item
// @Router       /items/search [get]
func (h *Controller) Search(c echo.Context) error {
	from, size, err := paging.Parse(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	items, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"), from, size)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, items)
}

// AddComment lets a past renter comment on an item
// @Summary      Add comment
// @Tags         items
// @Param        X-Sharer-User-Id  header  int  true  "Acting user id"
// @Param        itemId   path  int  true  "Item id"
// @Param        payload  body  CreateCommentReq  true  "Comment payload"
// @Success      200  {object}  model.CommentView
// @Failure      400  {object}  map[string]any "blank text or no completed booking"
// @Router       /items/{itemId}/comment [post]
func (h *Controller) AddComment(c echo.Context) error {
	id, err := pathID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req CreateCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	v, err := h.Svc.AddComment(c.Request().Context(), userID(c), id, req.Text)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, v)
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func userID(c echo.Context) int64 {
	id, _ := c.Get("user_id").(int64)
	return id
}
