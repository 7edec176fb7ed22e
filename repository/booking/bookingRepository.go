package bookingrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shareit/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)

	// Decide flips a WAITING booking to the given status. The condition is part
	// of the UPDATE so two concurrent approvals cannot both win; the loser sees
	// false via the rows-affected count.
	Decide(ctx context.Context, id int64, status model.BookingStatus) (bool, error)

	ByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error)
	ByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error)

	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)

	// HasFinished reports whether the user has at least one booking of the item
	// that ended before now. Comment gating relies on this join.
	HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const bookingColumns = `
b.id, b.item_id, i.name, b.booker_id, b.start_date, b.end_date, b.status`

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	const q = `
INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		b.ItemID, b.BookerID, b.Start, b.End, b.Status,
	).Scan(&b.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1`
	b := &model.Booking{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.BookerID, &b.Start, &b.End, &b.Status,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Decide(ctx context.Context, id int64, status model.BookingStatus) (bool, error) {
	const q = `
UPDATE bookings
SET status = $2
WHERE id = $1
  AND status = 'WAITING'`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func (r *repo) ByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	q := `
SELECT ` + bookingColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.booker_id = $1`
	return r.listByState(ctx, q, bookerID, state, now, from, size)
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	q := `
SELECT ` + bookingColumns + `
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1`
	return r.listByState(ctx, q, ownerID, state, now, from, size)
}

func (r *repo) listByState(ctx context.Context, q string, id int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	args := []any{id}
	idx := 2

	switch state {
	case model.StateCurrent:
		q += fmt.Sprintf(" AND b.start_date <= $%d AND b.end_date >= $%d", idx, idx)
		args = append(args, now)
		idx++
	case model.StatePast:
		q += fmt.Sprintf(" AND b.end_date < $%d", idx)
		args = append(args, now)
		idx++
	case model.StateFuture:
		q += fmt.Sprintf(" AND b.start_date > $%d", idx)
		args = append(args, now)
		idx++
	case model.StateWaiting, model.StateRejected:
		q += fmt.Sprintf(" AND b.status = $%d", idx)
		args = append(args, string(state))
		idx++
	}

	q += fmt.Sprintf(" ORDER BY b.start_date DESC OFFSET $%d LIMIT $%d", idx, idx+1)
	args = append(args, from, size)

	return r.list(ctx, q, args...)
}

func (r *repo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	const q = `
SELECT id, booker_id
FROM bookings
WHERE item_id = $1 AND start_date < $2
ORDER BY start_date DESC
LIMIT 1`
	return r.short(ctx, q, itemID, now)
}

func (r *repo) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	const q = `
SELECT id, booker_id
FROM bookings
WHERE item_id = $1 AND start_date > $2
ORDER BY start_date ASC
LIMIT 1`
	return r.short(ctx, q, itemID, now)
}

func (r *repo) HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE booker_id = $1 AND item_id = $2 AND end_date < $3
)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, bookerID, itemID, now).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *repo) short(ctx context.Context, q string, args ...any) (*model.BookingShort, error) {
	s := &model.BookingShort{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&s.ID, &s.BookerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.ItemID, &b.ItemName, &b.BookerID, &b.Start, &b.End, &b.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
