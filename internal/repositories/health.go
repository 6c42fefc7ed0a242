package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
)

type HealthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping runs SELECT 1 against the pool.
func (r *HealthRepository) Ping(ctx context.Context) error {
	query := `SELECT 1`

	var one int
	err := r.db.GetContext(ctx, &one, query)

	logger.Log.Infow("db query",
		"query", query,
		"result", one,
		"error", err,
	)

	return err
}
