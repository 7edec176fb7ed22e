// Package guard centralizes the existence checks every mutating operation
// performs before touching its own aggregate. A non-positive or unknown id
// comes back as a not-found error with the entity named in the message.
package guard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/model"
	bookingrepo "shareit/repository/booking"
	itemrepo "shareit/repository/item"
	requestrepo "shareit/repository/request"
	userrepo "shareit/repository/user"
	"shareit/util/apperr"
)

type Guard struct {
	users    userrepo.Repo
	items    itemrepo.Repo
	bookings bookingrepo.Repo
	requests requestrepo.Repo
}

func New(ur userrepo.Repo, ir itemrepo.Repo, br bookingrepo.Repo, rr requestrepo.Repo) *Guard {
	return &Guard{users: ur, items: ir, bookings: br, requests: rr}
}

func (g *Guard) RequireUser(ctx context.Context, userID int64) (*model.User, error) {
	if userID <= 0 {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("user with id %d not found", userID))
	}
	u, err := g.users.ByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("user with id %d not found", userID))
	}
	return u, err
}

func (g *Guard) RequireItem(ctx context.Context, itemID int64) (*model.Item, error) {
	if itemID <= 0 {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("item with id %d not found", itemID))
	}
	it, err := g.items.ByID(ctx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("item with id %d not found", itemID))
	}
	return it, err
}

func (g *Guard) RequireAvailableItem(ctx context.Context, itemID int64) (*model.Item, error) {
	it, err := g.RequireItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, apperr.New(apperr.ErrUnavailable, fmt.Sprintf("item with id = %d is not available now", itemID))
	}
	return it, nil
}

func (g *Guard) RequireBooking(ctx context.Context, bookingID int64) (*model.Booking, error) {
	if bookingID <= 0 {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("booking with id %d not found", bookingID))
	}
	b, err := g.bookings.ByID(ctx, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("booking with id %d not found", bookingID))
	}
	return b, err
}

func (g *Guard) RequireRequest(ctx context.Context, requestID int64) (*model.ItemRequest, error) {
	if requestID <= 0 {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("request with id %d not found", requestID))
	}
	req, err := g.requests.ByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrNotFound, fmt.Sprintf("request with id %d not found", requestID))
	}
	return req, err
}
