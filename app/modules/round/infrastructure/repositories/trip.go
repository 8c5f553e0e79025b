package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/uptrace/bun"
)

// Impl is the bun-backed Repository.
type Impl struct {
	DB bun.IDB
}

// NewRepository returns a Repository over db.
func NewRepository(db bun.IDB) *Impl {
	return &Impl{DB: db}
}

func (r *Impl) CreateTrip(ctx context.Context, trip *rounddomain.Trip) error {
	res, err := r.DB.NewInsert().
		Model(toModel(trip)).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trip %s: %w", trip.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, trip.ID)
	}
	return nil
}

func (r *Impl) GetTrip(ctx context.Context, id rounddomain.TripID) (*rounddomain.Trip, error) {
	model := new(Trip)
	err := r.DB.NewSelect().
		Model(model).
		Where("t.id = ?", id.String()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}
	return model.toDomain(), nil
}

func (r *Impl) SaveTrip(ctx context.Context, trip *rounddomain.Trip) error {
	model := toModel(trip)
	model.UpdatedAt = time.Now().UTC()
	res, err := r.DB.NewUpdate().
		Model(model).
		Column("name", "roster", "rounds", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save trip %s: %w", trip.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, trip.ID)
	}
	return nil
}

func (r *Impl) DeleteTrip(ctx context.Context, id rounddomain.TripID) error {
	res, err := r.DB.NewDelete().
		Model((*Trip)(nil)).
		Where("id = ?", id.String()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
