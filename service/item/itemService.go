package itemsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shareit/model"
	bookingrepo "shareit/repository/booking"
	commentrepo "shareit/repository/comment"
	itemrepo "shareit/repository/item"
	"shareit/util/apperr"
	"shareit/util/guard"
)

// Create payload; RequestID links the new item to the item request it answers.
type ItemCreate struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type Service interface {
	Create(ctx context.Context, userID int64, req ItemCreate) (*model.Item, error)
	Update(ctx context.Context, userID, itemID int64, patch model.ItemPatch) (*model.Item, error)
	FindByID(ctx context.Context, userID, itemID int64) (*model.ItemView, error)
	FindAllForOwner(ctx context.Context, userID int64, from, size int) ([]model.ItemView, error)
	Search(ctx context.Context, text string, from, size int) ([]model.Item, error)

	// AddComment is gated on a completed booking of the item by the author.
	AddComment(ctx context.Context, userID, itemID int64, text string) (*model.CommentView, error)
}

type service struct {
	ir itemrepo.Repo
	br bookingrepo.Repo
	cr commentrepo.Repo
	g  *guard.Guard
}

func New(ir itemrepo.Repo, br bookingrepo.Repo, cr commentrepo.Repo, g *guard.Guard) Service {
	return &service{ir: ir, br: br, cr: cr, g: g}
}

func (s *service) Create(ctx context.Context, userID int64, req ItemCreate) (*model.Item, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.g.RequireRequest(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}
	it := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     userID,
		RequestID:   req.RequestID,
	}
	if err := s.ir.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, userID, itemID int64, patch model.ItemPatch) (*model.Item, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.g.RequireItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != userID {
		return nil, apperr.New(apperr.ErrForbidden,
			fmt.Sprintf("user with id %d can't update item with id %d", userID, itemID))
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
	if err := s.ir.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) FindByID(ctx context.Context, userID, itemID int64) (*model.ItemView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.g.RequireItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, it, userID, time.Now())
}

func (s *service) FindAllForOwner(ctx context.Context, userID int64, from, size int) ([]model.ItemView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.ir.ByOwner(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]model.ItemView, 0, len(items))
	for i := range items {
		v, err := s.view(ctx, &items[i], userID, now)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *service) Search(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.ir.Search(ctx, text, from, size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) AddComment(ctx context.Context, userID, itemID int64, text string) (*model.CommentView, error) {
	u, err := s.g.RequireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	it, err := s.g.RequireItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.New(apperr.ErrEmptyComment, "comment text should not be blank")
	}

	now := time.Now()
	booked, err := s.br.HasFinished(ctx, userID, it.ID, now)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, apperr.New(apperr.ErrNotBooker,
			fmt.Sprintf("user with id = %d didn't book the item", userID))
	}

	c := &model.Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   u.ID,
		AuthorName: u.Name,
		Created:    now,
	}
	if err := s.cr.Create(ctx, c); err != nil {
		return nil, err
	}
	v := c.View()
	return &v, nil
}

// view assembles the response shape; booking neighbors are owner-only.
func (s *service) view(ctx context.Context, it *model.Item, userID int64, now time.Time) (*model.ItemView, error) {
	comments, err := s.cr.ByItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	commentViews := make([]model.CommentView, 0, len(comments))
	for i := range comments {
		commentViews = append(commentViews, comments[i].View())
	}

	v := &model.ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		Comments:    commentViews,
		RequestID:   it.RequestID,
	}
	if it.OwnerID == userID {
		if v.LastBooking, err = s.br.LastForItem(ctx, it.ID, now); err != nil {
			return nil, err
		}
		if v.NextBooking, err = s.br.NextForItem(ctx, it.ID, now); err != nil {
			return nil, err
		}
	}
	return v, nil
}
