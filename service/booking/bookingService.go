package bookingsvc

import (
	"context"
	"fmt"
	"time"

	"shareit/model"
	bookingrepo "shareit/repository/booking"
	"shareit/util/apperr"
	"shareit/util/guard"
)

type Service interface {
	// Create books an item for a user other than its owner. Both ends of the
	// range must lie in the future against a single "now" sample.
	Create(ctx context.Context, userID, itemID int64, start, end time.Time) (*model.BookingView, error)

	// Approve decides a WAITING booking. Only the owner of the booked item may
	// decide, and a decided booking can never change again.
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.BookingView, error)

	// FindByID is visible to the item's owner and the booker only.
	FindByID(ctx context.Context, userID, bookingID int64) (*model.BookingView, error)

	ListForBooker(ctx context.Context, bookerID int64, state model.BookingState, from, size int) ([]model.BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.BookingView, error)
}

type service struct {
	br bookingrepo.Repo
	g  *guard.Guard
}

func New(br bookingrepo.Repo, g *guard.Guard) Service {
	return &service{br: br, g: g}
}

func (s *service) Create(ctx context.Context, userID, itemID int64, start, end time.Time) (*model.BookingView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.g.RequireAvailableItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !start.After(now) || !end.After(now) {
		return nil, apperr.New(apperr.ErrBadTimeRange,
			"start time and end time of booking should be in the future")
	}
	if !start.Before(end) {
		return nil, apperr.New(apperr.ErrBadTimeRange,
			"start time of booking should be before end time")
	}
	if item.OwnerID == userID {
		return nil, apperr.New(apperr.ErrSelfBooking,
			fmt.Sprintf("user with id = %d can't book his own item", userID))
	}

	b := &model.Booking{
		ItemID:   item.ID,
		ItemName: item.Name,
		BookerID: userID,
		Start:    start,
		End:      end,
		Status:   model.BookingWaiting,
	}
	if err := s.br.Create(ctx, b); err != nil {
		return nil, err
	}
	v := b.View()
	return &v, nil
}

func (s *service) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.BookingView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.g.RequireBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != model.BookingWaiting {
		return nil, apperr.New(apperr.ErrAlreadyDecided,
			"it's impossible to change status of booking after approved")
	}
	item, err := s.g.RequireItem(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, apperr.New(apperr.ErrForbidden,
			fmt.Sprintf("user with id = %d is not the owner of item with id = %d", userID, item.ID))
	}

	status := model.BookingRejected
	if approved {
		status = model.BookingApproved
	}
	// Conditional update: a concurrent approval that commits first leaves zero
	// rows for the loser, which then fails exactly like a re-approval.
	decided, err := s.br.Decide(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, apperr.New(apperr.ErrAlreadyDecided,
			"it's impossible to change status of booking after approved")
	}

	b.Status = status
	v := b.View()
	return &v, nil
}

func (s *service) FindByID(ctx context.Context, userID, bookingID int64) (*model.BookingView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.g.RequireBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := s.g.RequireItem(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID && b.BookerID != userID {
		return nil, apperr.New(apperr.ErrForbidden,
			fmt.Sprintf("user with id = %d does not have enough rights to view booking with id = %d", userID, bookingID))
	}
	v := b.View()
	return &v, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state model.BookingState, from, size int) ([]model.BookingView, error) {
	if _, err := s.g.RequireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	bookings, err := s.br.ByBooker(ctx, bookerID, state, time.Now(), from, size)
	if err != nil {
		return nil, err
	}
	return views(bookings), nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.BookingView, error) {
	if _, err := s.g.RequireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.br.ByOwner(ctx, ownerID, state, time.Now(), from, size)
	if err != nil {
		return nil, err
	}
	// Historical behavior: an empty page for an owner is reported as not found,
	// even when the owner has items but no bookings match the filter.
	if len(bookings) == 0 {
		return nil, apperr.New(apperr.ErrNotFound,
			fmt.Sprintf("owner with id = %d doesn't have any items", ownerID))
	}
	return views(bookings), nil
}

func views(bookings []model.Booking) []model.BookingView {
	out := make([]model.BookingView, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].View())
	}
	return out
}
