package repository

import (
	"context"
	"database/sql"

	"github.com/saishivaaditya/market/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *model.Campaign) error
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	query := `
        INSERT INTO campaigns (product, industry, cost, audience, platform, result, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	return r.DB.QueryRowContext(ctx, query,
		c.Product, c.Industry, c.Cost, c.Audience, c.Platform, c.Result, c.UserID,
	).Scan(&c.ID)
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
