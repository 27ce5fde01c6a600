package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/domain/repository"
	"github.com/navigation-microservice/internal/pkg/errors"
)

type wheelchairRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewWheelchairRepository(db *DB) repository.WheelchairRepository {
	return &wheelchairRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *wheelchairRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM wheelchairs WHERE id = $1)`, id)
	if err != nil {
		r.logger.Error("Failed to check wheelchair", zap.String("id", id.String()), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}
