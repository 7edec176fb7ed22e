package echoServer

import (
	"shareit/app/echoServer/controller/booking"
	"shareit/app/echoServer/controller/item"
	"shareit/app/echoServer/controller/request"
	"shareit/app/echoServer/controller/user"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type C struct {
	User    *user.Controller
	Item    *item.Controller
	Booking *booking.Controller
	Request *request.Controller
}

func Register(e *echo.Echo, c C) {
	// Users are managed without the identity header.
	e.POST("/users", c.User.Create)
	e.PATCH("/users/:userId", c.User.Update)
	e.GET("/users/:userId", c.User.FindByID)
	e.GET("/users", c.User.FindAll)
	e.DELETE("/users/:userId", c.User.Delete)

	ident := Identity()

	// Items. Search is public, everything else acts on behalf of a user.
	e.POST("/items", c.Item.Create, ident)
	e.PATCH("/items/:itemId", c.Item.Update, ident)
	e.GET("/items/:itemId", c.Item.FindByID, ident)
	e.GET("/items", c.Item.FindAll, ident)
	e.GET("/items/search", c.Item.Search)
	e.POST("/items/:itemId/comment", c.Item.AddComment, ident)

	// Item requests
	e.POST("/requests", c.Request.Create, ident)
	e.GET("/requests", c.Request.FindOwn, ident)
	e.GET("/requests/all", c.Request.FindAll, ident)
	e.GET("/requests/:requestId", c.Request.FindByID, ident)

	// Bookings
	e.POST("/bookings", c.Booking.Create, ident)
	e.PATCH("/bookings/:bookingId", c.Booking.Approve, ident)
	e.GET("/bookings/owner", c.Booking.ListForOwner, ident)
	e.GET("/bookings/:bookingId", c.Booking.FindByID, ident)
	e.GET("/bookings", c.Booking.ListForBooker, ident)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
