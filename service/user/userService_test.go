package usersvc

import (
	"context"
	"database/sql"
	"testing"

	"shareit/model"
	userrepo "shareit/repository/user"
	"shareit/util/apperr"
	"shareit/util/guard"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type usersStub struct {
	users     map[int64]model.User
	createErr error
	updateErr error
	updated   *model.User
	deleted   []int64
}

var _ userrepo.Repo = (*usersStub)(nil)

func (s *usersStub) Create(ctx context.Context, u *model.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = 1
	return nil
}
func (s *usersStub) Update(ctx context.Context, u *model.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = u
	return nil
}
func (s *usersStub) ByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}
func (s *usersStub) All(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}
func (s *usersStub) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newService(ur *usersStub) Service {
	// only the user repo is reachable from these operations
	return New(ur, guard.New(ur, nil, nil, nil))
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	ur := &usersStub{}
	svc := newService(ur)

	u, err := svc.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "alice", u.Name)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	ur := &usersStub{createErr: uniqueViolation()}
	svc := newService(ur)

	_, err := svc.Create(ctx, "alice", "alice@example.com")
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	ur := &usersStub{users: map[int64]model.User{
		1: {ID: 1, Name: "alice", Email: "alice@example.com"},
	}}
	svc := newService(ur)

	name := "alicia"
	u, err := svc.Update(ctx, 1, model.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "alicia", u.Name)
	require.Equal(t, "alice@example.com", u.Email)
	require.NotNil(t, ur.updated)
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	ur := &usersStub{
		users:     map[int64]model.User{1: {ID: 1, Name: "alice", Email: "alice@example.com"}},
		updateErr: uniqueViolation(),
	}
	svc := newService(ur)

	email := "taken@example.com"
	_, err := svc.Update(ctx, 1, model.UserPatch{Email: &email})
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func TestUpdate_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newService(&usersStub{})

	name := "ghost"
	_, err := svc.Update(ctx, 42, model.UserPatch{Name: &name})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestFindByID_NonPositiveID(t *testing.T) {
	ctx := context.Background()
	svc := newService(&usersStub{})

	_, err := svc.FindByID(ctx, 0)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	_, err = svc.FindByID(ctx, -3)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	ur := &usersStub{}
	svc := newService(ur)

	require.NoError(t, svc.Delete(ctx, 5))
	require.Equal(t, []int64{5}, ur.deleted)
}
