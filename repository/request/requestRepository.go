package requestrepo

import (
	"context"
	"database/sql"

	"shareit/model"
)

type Repo interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequester(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error)
	AllExcept(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, req *model.ItemRequest) error {
	const q = `
INSERT INTO requests (description, requester_id, created)
VALUES ($1, $2, $3)
RETURNING id`
	return r.db.QueryRowContext(ctx, q, req.Description, req.RequesterID, req.Created).Scan(&req.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	const q = `
SELECT id, description, requester_id, created
FROM requests
WHERE id = $1`
	req := &model.ItemRequest{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&req.ID, &req.Description, &req.RequesterID, &req.Created,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ByRequester(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	const q = `
SELECT id, description, requester_id, created
FROM requests
WHERE requester_id = $1
ORDER BY created DESC
OFFSET $2 LIMIT $3`
	return r.list(ctx, q, requesterID, from, size)
}

func (r *repo) AllExcept(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	const q = `
SELECT id, description, requester_id, created
FROM requests
WHERE requester_id <> $1
ORDER BY created DESC
OFFSET $2 LIMIT $3`
	return r.list(ctx, q, requesterID, from, size)
}

func (r *repo) list(ctx context.Context, q string, args ...any) ([]model.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
