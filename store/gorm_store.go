package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// gormStore adapts *gorm.DB to the Store contract for one entity kind. The
// id accessor gives generic code a handle on the primary-key field; preloads
// name the associations loaded on reads (e.g. "Customer" for orders).
type gormStore[T any] struct {
	db       *gorm.DB
	id       func(*T) *uint
	preloads []string
}

func newGormStore[T any](db *gorm.DB, id func(*T) *uint, preloads ...string) *gormStore[T] {
	return &gormStore[T]{db: db, id: id, preloads: preloads}
}

func (s *gormStore[T]) read(ctx context.Context) *gorm.DB {
	tx := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (s *gormStore[T]) All(ctx context.Context) ([]T, error) {
	var rows []T
	if err := s.read(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore[T]) ByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := s.read(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormStore[T]) Insert(ctx context.Context, entity *T) (uint, error) {
	// The store assigns ids; anything the caller put there is discarded.
	*s.id(entity) = 0
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return 0, err
	}
	return *s.id(entity), nil
}

func (s *gormStore[T]) UpdateByID(ctx context.Context, id uint, entity *T) (int64, error) {
	*s.id(entity) = id
	// Select("*") forces a full-row replacement; a struct update would skip
	// zero-valued fields.
	tx := s.db.WithContext(ctx).
		Model(entity).
		Where("id = ?", id).
		Select("*").
		Omit("id").
		Updates(entity)
	return tx.RowsAffected, tx.Error
}

func (s *gormStore[T]) DeleteByID(ctx context.Context, id uint) (int64, error) {
	var row T
	tx := s.db.WithContext(ctx).Delete(&row, id)
	return tx.RowsAffected, tx.Error
}
