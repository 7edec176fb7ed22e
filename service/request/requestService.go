package requestsvc

import (
	"context"
	"time"

	"shareit/model"
	itemrepo "shareit/repository/item"
	requestrepo "shareit/repository/request"
	"shareit/util/guard"
)

// Item requests are append-only: once posted they are never updated or deleted,
// other users answer them by listing items with a matching requestId.
type Service interface {
	Create(ctx context.Context, userID int64, description string) (*model.ItemRequestView, error)
	FindOwn(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestView, error)
	FindAll(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestView, error)
	FindByID(ctx context.Context, userID, requestID int64) (*model.ItemRequestView, error)
}

type service struct {
	rr requestrepo.Repo
	ir itemrepo.Repo
	g  *guard.Guard
}

func New(rr requestrepo.Repo, ir itemrepo.Repo, g *guard.Guard) Service {
	return &service{rr: rr, ir: ir, g: g}
}

func (s *service) Create(ctx context.Context, userID int64, description string) (*model.ItemRequestView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	req := &model.ItemRequest{
		Description: description,
		RequesterID: userID,
		Created:     time.Now(),
	}
	if err := s.rr.Create(ctx, req); err != nil {
		return nil, err
	}
	return &model.ItemRequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       []model.Item{},
	}, nil
}

func (s *service) FindOwn(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.rr.ByRequester(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, requests)
}

func (s *service) FindAll(ctx context.Context, userID int64, from, size int) ([]model.ItemRequestView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.rr.AllExcept(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, requests)
}

func (s *service) FindByID(ctx context.Context, userID, requestID int64) (*model.ItemRequestView, error) {
	if _, err := s.g.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.g.RequireRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	v, err := s.view(ctx, req)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) views(ctx context.Context, requests []model.ItemRequest) ([]model.ItemRequestView, error) {
	out := make([]model.ItemRequestView, 0, len(requests))
	for i := range requests {
		v, err := s.view(ctx, &requests[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *service) view(ctx context.Context, req *model.ItemRequest) (*model.ItemRequestView, error) {
	items, err := s.ir.ByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return &model.ItemRequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       items,
	}, nil
}
