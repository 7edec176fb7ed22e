package model

import "time"

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

// BookingState is the query filter for booking listings, distinct from the
// stored status: CURRENT/PAST/FUTURE are time predicates evaluated at query time.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

func ParseBookingState(s string) (BookingState, bool) {
	switch BookingState(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return BookingState(s), true
	}
	return "", false
}

type Booking struct {
	ID       int64
	ItemID   int64
	ItemName string
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   BookingStatus
}

type BookingView struct {
	ID     int64         `json:"id"`
	Item   ItemRef       `json:"item"`
	Booker BookerRef     `json:"booker"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerRef struct {
	ID int64 `json:"id"`
}

// BookingShort is the compact view embedded into item reads.
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

func (b *Booking) View() BookingView {
	return BookingView{
		ID:     b.ID,
		Item:   ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker: BookerRef{ID: b.BookerID},
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
}
