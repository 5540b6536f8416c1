package store

import (
	"context"
	"errors"
	"time"

	"github.com/budgetplanner/backend/internal/models"
	"gorm.io/gorm"
)

// SQL is a Store backed by a gorm database.
//
// IDs are generated by the database. gorm creates uint primary keys as
// INTEGER PRIMARY KEY AUTOINCREMENT on SQLite, which never reuses IDs.
type SQL[T any, PT entity[T]] struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Store[models.Budget] = (*SQL[models.Budget, *models.Budget])(nil)

// NewSQL returns a SQL store using db. The table for T must exist.
func NewSQL[T any, PT entity[T]](db *gorm.DB, now func() time.Time) *SQL[T, PT] {
	if now == nil {
		now = time.Now
	}

	return &SQL[T, PT]{
		db:  db,
		now: now,
	}
}

// NewSQLStores returns the collections of a SQL backend. Closing the
// Stores closes db.
func NewSQLStores(db *gorm.DB, now func() time.Time) Stores {
	return Stores{
		Users:          NewSQL[models.User](db, now),
		Budgets:        NewSQL[models.Budget](db, now),
		MonthlyData:    NewSQL[models.MonthlyData](db, now),
		MonthlyActuals: NewSQL[models.MonthlyActual](db, now),

		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func (s *SQL[T, PT]) Get(ctx context.Context, id uint) (T, error) {
	var r T

	err := s.db.WithContext(ctx).First(&r, id).Error
	if err != nil {
		var zero T
		return zero, s.translate(err)
	}

	return r, nil
}

func (s *SQL[T, PT]) List(ctx context.Context, p Predicate[T]) ([]T, error) {
	q := s.db.WithContext(ctx)
	if query, args := p.sql(); query != "" {
		q = q.Where(query, args...)
	}

	result := make([]T, 0)
	err := q.Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *SQL[T, PT]) Create(ctx context.Context, resource T) (T, error) {
	p := PT(&resource)
	p.SetID(0)
	p.ApplyDefaults(s.now())

	err := s.db.WithContext(ctx).Create(p).Error
	if err != nil {
		var zero T
		return zero, err
	}

	return resource, nil
}

// Update reads, patches and saves the resource in one transaction.
func (s *SQL[T, PT]) Update(ctx context.Context, id uint, patch Patch[T]) (T, error) {
	var r T

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return err
		}

		patch.Apply(&r)
		PT(&r).SetID(id)

		return tx.Save(&r).Error
	})
	if err != nil {
		var zero T
		return zero, s.translate(err)
	}

	return r, nil
}

func (s *SQL[T, PT]) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(PT(new(T)), id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// translate replaces the generic "record not found" error of gorm with
// one naming the resource.
func (s *SQL[T, PT]) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero T
		return models.NotFound(PT(&zero))
	}

	return err
}
