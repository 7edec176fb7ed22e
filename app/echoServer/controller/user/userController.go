package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"shareit/app/echoServer/httperr"
	"shareit/model"
	usersvc "shareit/service/user"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// Create registers a new user
// @Summary      Register user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateUserReq  true  "User payload"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email already in use"
// @Router       /users [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	u, err := h.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Update applies a partial patch to a user
// @Summary      Update user
// @Tags         users
// @Param        userId   path  int  true  "User id"
// @Param        payload  body  model.UserPatch  true  "Patch; absent fields keep old values"
// @Success      200  {object}  model.User
// @Router       /users/{userId} [patch]
func (h *Controller) Update(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	u, err := h.Svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// FindByID returns a single user
// @Summary      Get user
// @Tags         users
// @Param        userId  path  int  true  "User id"
// @Success      200  {object}  model.User
// @Router       /users/{userId} [get]
func (h *Controller) FindByID(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.Svc.FindByID(c.Request().Context(), id)
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// FindAll lists all users
// @Summary      List users
// @Tags         users
// @Success      200  {array}  model.User
// @Router       /users [get]
func (h *Controller) FindAll(c echo.Context) error {
	users, err := h.Svc.FindAll(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes a user by id
// @Summary      Delete user
// @Tags         users
// @Param        userId  path  int  true  "User id"
// @Success      200
// @Router       /users/{userId} [delete]
func (h *Controller) Delete(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return httperr.Respond(c, h.Log, err)
	}
	return c.NoContent(http.StatusOK)
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
