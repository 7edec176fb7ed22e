package usersvc

import (
	"context"
	"errors"

	"shareit/model"
	userrepo "shareit/repository/user"
	"shareit/util/apperr"
	"shareit/util/guard"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Service interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, userID int64, patch model.UserPatch) (*model.User, error)
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, userID int64) error
}

type service struct {
	ur userrepo.Repo
	g  *guard.Guard
}

func New(ur userrepo.Repo, g *guard.Guard) Service {
	return &service{ur: ur, g: g}
}

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	u := &model.User{Name: name, Email: email}
	if err := s.ur.Create(ctx, u); err != nil {
		return nil, mapDuplicateErr(err)
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, userID int64, patch model.UserPatch) (*model.User, error) {
	u, err := s.g.RequireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if err := s.ur.Update(ctx, u); err != nil {
		return nil, mapDuplicateErr(err)
	}
	return u, nil
}

func (s *service) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.g.RequireUser(ctx, userID)
}

func (s *service) FindAll(ctx context.Context) ([]model.User, error) {
	return s.ur.All(ctx)
}

func (s *service) Delete(ctx context.Context, userID int64) error {
	return s.ur.Delete(ctx, userID)
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.New(apperr.ErrConflict, "email already in use")
	}
	return err
}
