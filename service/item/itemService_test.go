package itemsvc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"shareit/model"
	bookingrepo "shareit/repository/booking"
	commentrepo "shareit/repository/comment"
	itemrepo "shareit/repository/item"
	requestrepo "shareit/repository/request"
	userrepo "shareit/repository/user"
	"shareit/util/apperr"
	"shareit/util/guard"

	"github.com/stretchr/testify/require"
)

type usersStub struct{ users map[int64]model.User }

var _ userrepo.Repo = (*usersStub)(nil)

func (s *usersStub) Create(ctx context.Context, u *model.User) error { return nil }
func (s *usersStub) Update(ctx context.Context, u *model.User) error { return nil }
func (s *usersStub) ByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}
func (s *usersStub) All(ctx context.Context) ([]model.User, error) { return nil, nil }
func (s *usersStub) Delete(ctx context.Context, id int64) error    { return nil }

type itemsStub struct {
	items   map[int64]model.Item
	updated *model.Item
}

var _ itemrepo.Repo = (*itemsStub)(nil)

func (s *itemsStub) Create(ctx context.Context, it *model.Item) error {
	it.ID = 100
	return nil
}
func (s *itemsStub) Update(ctx context.Context, it *model.Item) error {
	s.updated = it
	return nil
}
func (s *itemsStub) ByID(ctx context.Context, id int64) (*model.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &it, nil
}
func (s *itemsStub) ByOwner(ctx context.Context, ownerID int64, from, size int) ([]model.Item, error) {
	var out []model.Item
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (s *itemsStub) Search(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	return []model.Item{s.items[1]}, nil
}
func (s *itemsStub) ByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	return nil, nil
}

type requestsStub struct{ requests map[int64]model.ItemRequest }

var _ requestrepo.Repo = (*requestsStub)(nil)

func (s *requestsStub) Create(ctx context.Context, req *model.ItemRequest) error { return nil }
func (s *requestsStub) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &req, nil
}
func (s *requestsStub) ByRequester(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	return nil, nil
}
func (s *requestsStub) AllExcept(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	return nil, nil
}

type bookingsStub struct {
	hasFinished bool
	last, next  *model.BookingShort
}

var _ bookingrepo.Repo = (*bookingsStub)(nil)

func (s *bookingsStub) Create(ctx context.Context, b *model.Booking) error { return nil }
func (s *bookingsStub) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	return nil, sql.ErrNoRows
}
func (s *bookingsStub) Decide(ctx context.Context, id int64, status model.BookingStatus) (bool, error) {
	return false, nil
}
func (s *bookingsStub) ByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	return nil, nil
}
func (s *bookingsStub) ByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	return nil, nil
}
func (s *bookingsStub) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	return s.last, nil
}
func (s *bookingsStub) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	return s.next, nil
}
func (s *bookingsStub) HasFinished(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	return s.hasFinished, nil
}

type commentsStub struct {
	comments []model.Comment
	created  *model.Comment
}

var _ commentrepo.Repo = (*commentsStub)(nil)

func (s *commentsStub) Create(ctx context.Context, c *model.Comment) error {
	c.ID = 1
	s.created = c
	return nil
}
func (s *commentsStub) ByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	return s.comments, nil
}

type fixture struct {
	svc      Service
	items    *itemsStub
	bookings *bookingsStub
	comments *commentsStub
}

func newFixture() *fixture {
	users := &usersStub{users: map[int64]model.User{
		1: {ID: 1, Name: "owner", Email: "owner@example.com"},
		2: {ID: 2, Name: "renter", Email: "renter@example.com"},
	}}
	items := &itemsStub{items: map[int64]model.Item{
		1: {ID: 1, Name: "drill", Description: "electric drill", Available: true, OwnerID: 1},
	}}
	bookings := &bookingsStub{}
	comments := &commentsStub{}
	requests := &requestsStub{requests: map[int64]model.ItemRequest{
		7: {ID: 7, Description: "need a drill", RequesterID: 2},
	}}
	g := guard.New(users, items, bookings, requests)
	return &fixture{
		svc:      New(items, bookings, comments, g),
		items:    items,
		bookings: bookings,
		comments: comments,
	}
}

func TestCreate_LinksRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	reqID := int64(7)
	it, err := f.svc.Create(ctx, 1, ItemCreate{Name: "saw", Description: "hand saw", Available: true, RequestID: &reqID})
	require.NoError(t, err)
	require.Equal(t, int64(100), it.ID)
	require.Equal(t, int64(1), it.OwnerID)
	require.NotNil(t, it.RequestID)
	require.Equal(t, reqID, *it.RequestID)
}

func TestCreate_UnknownRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	reqID := int64(99)
	_, err := f.svc.Create(ctx, 1, ItemCreate{Name: "saw", Description: "hand saw", Available: true, RequestID: &reqID})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	desc := "cordless drill"
	it, err := f.svc.Update(ctx, 1, 1, model.ItemPatch{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "drill", it.Name)
	require.Equal(t, "cordless drill", it.Description)
	require.True(t, it.Available)
	require.NotNil(t, f.items.updated)
}

func TestUpdate_NotOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	name := "stolen drill"
	_, err := f.svc.Update(ctx, 2, 1, model.ItemPatch{Name: &name})
	require.Equal(t, apperr.ErrForbidden, apperr.Code(err))
	require.Nil(t, f.items.updated)
}

func TestFindByID_OwnerSeesBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.bookings.last = &model.BookingShort{ID: 4, BookerID: 2}
	f.bookings.next = &model.BookingShort{ID: 5, BookerID: 2}

	v, err := f.svc.FindByID(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, v.LastBooking)
	require.NotNil(t, v.NextBooking)
	require.Equal(t, int64(4), v.LastBooking.ID)
}

func TestFindByID_OthersDoNotSeeBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.bookings.last = &model.BookingShort{ID: 4, BookerID: 2}

	v, err := f.svc.FindByID(ctx, 2, 1)
	require.NoError(t, err)
	require.Nil(t, v.LastBooking)
	require.Nil(t, v.NextBooking)
	require.NotNil(t, v.Comments)
}

func TestSearch_BlankText(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	items, err := f.svc.Search(ctx, "   ", 0, 10)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestAddComment_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.bookings.hasFinished = true

	v, err := f.svc.AddComment(ctx, 2, 1, "great drill")
	require.NoError(t, err)
	require.Equal(t, "great drill", v.Text)
	require.Equal(t, "renter", v.AuthorName)
	require.False(t, v.Created.IsZero())
	require.NotNil(t, f.comments.created)
	require.Equal(t, int64(1), f.comments.created.ItemID)
}

func TestAddComment_WithoutFinishedBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.bookings.hasFinished = false

	_, err := f.svc.AddComment(ctx, 2, 1, "great drill")
	require.Equal(t, apperr.ErrNotBooker, apperr.Code(err))
	require.Nil(t, f.comments.created)
}

func TestAddComment_BlankText(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.bookings.hasFinished = true

	_, err := f.svc.AddComment(ctx, 2, 1, "   ")
	require.Equal(t, apperr.ErrEmptyComment, apperr.Code(err))
	require.Nil(t, f.comments.created)
}
