// Package store is the persistence collaborator for the entity services.
// It exposes row-level primitives only; business rules live in services.
package store

import (
	"context"

	"github.com/restaurantsys/backoffice/models"
	"gorm.io/gorm"
)

// Store is the row-level contract one entity kind needs. All returns rows in
// ascending id order, ByID reports absence as a nil row rather than an error,
// and the write primitives surface rows-affected counts so callers can tell
// "not found" from success.
type Store[T any] interface {
	All(ctx context.Context) ([]T, error)
	ByID(ctx context.Context, id uint) (*T, error)
	Insert(ctx context.Context, entity *T) (uint, error)
	UpdateByID(ctx context.Context, id uint, entity *T) (int64, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

// CustomerLookup is the existence probe used for referential checks before
// writing an order or reservation.
type CustomerLookup interface {
	Exists(ctx context.Context, customerID uint) (bool, error)
}

func NewCustomerStore(db *gorm.DB) Store[models.Customer] {
	return newGormStore(db, func(c *models.Customer) *uint { return &c.ID })
}

func NewWaiterStore(db *gorm.DB) Store[models.Waiter] {
	return newGormStore(db, func(w *models.Waiter) *uint { return &w.ID })
}

func NewDishStore(db *gorm.DB) Store[models.Dish] {
	return newGormStore(db, func(d *models.Dish) *uint { return &d.ID })
}

func NewOrderStore(db *gorm.DB) Store[models.Order] {
	return newGormStore(db, func(o *models.Order) *uint { return &o.ID }, "Customer")
}

func NewReservationStore(db *gorm.DB) Store[models.Reservation] {
	return newGormStore(db, func(r *models.Reservation) *uint { return &r.ID }, "Customer")
}

func NewCustomerLookup(db *gorm.DB) CustomerLookup {
	return &customerLookup{db: db}
}

type customerLookup struct {
	db *gorm.DB
}

func (l *customerLookup) Exists(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
