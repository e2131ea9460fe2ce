package repository

import (
	"context"
	"database/sql"

	"github.com/saishivaaditya/market/internal/model"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *model.Lead) error
}

type LeadRepository struct {
	DB *sql.DB
}

func (r *LeadRepository) Create(ctx context.Context, l *model.Lead) error {
	query := `
        INSERT INTO leads (name, budget, need, urgency, score, probability, analysis, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		l.Name, l.Budget, l.Need, l.Urgency, l.Score, l.Probability, l.Analysis, l.UserID,
	).Scan(&l.ID)
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
