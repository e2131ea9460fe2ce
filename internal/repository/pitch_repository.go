package repository

import (
	"context"
	"database/sql"

	"github.com/saishivaaditya/market/internal/model"
)

type PitchRepositoryInterface interface {
	Create(ctx context.Context, p *model.Pitch) error
}

type PitchRepository struct {
	DB *sql.DB
}

func (r *PitchRepository) Create(ctx context.Context, p *model.Pitch) error {
	query := `
        INSERT INTO pitches (product, customer, result, user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query, p.Product, p.Customer, p.Result, p.UserID).Scan(&p.ID)
}

var _ PitchRepositoryInterface = (*PitchRepository)(nil)
