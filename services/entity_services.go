package services

import (
	"context"

	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/models"
	"github.com/restaurantsys/backoffice/store"
	"github.com/restaurantsys/backoffice/validation"
	"gorm.io/gorm"
)

type (
	CustomerService    = Service[models.Customer]
	WaiterService      = Service[models.Waiter]
	DishService        = Service[models.Dish]
	OrderService       = Service[models.Order]
	ReservationService = Service[models.Reservation]
)

func NewCustomerService(db *gorm.DB, limits config.Limits) *CustomerService {
	return newService(
		"customer",
		store.NewCustomerStore(db),
		validation.CustomerRules(limits),
		func(c *models.Customer) uint { return c.ID },
		nil,
	)
}

func NewWaiterService(db *gorm.DB, limits config.Limits) *WaiterService {
	return newService(
		"waiter",
		store.NewWaiterStore(db),
		validation.WaiterRules(limits),
		func(w *models.Waiter) uint { return w.ID },
		nil,
	)
}

func NewDishService(db *gorm.DB, limits config.Limits) *DishService {
	return newService(
		"dish",
		store.NewDishStore(db),
		validation.DishRules(limits),
		func(d *models.Dish) uint { return d.ID },
		nil,
	)
}

func NewOrderService(db *gorm.DB, limits config.Limits) *OrderService {
	return newService(
		"order",
		store.NewOrderStore(db),
		validation.OrderRules(limits),
		func(o *models.Order) uint { return o.ID },
		customerRef(store.NewCustomerLookup(db), func(o *models.Order) uint { return o.CustomerID }),
	)
}

func NewReservationService(db *gorm.DB, limits config.Limits) *ReservationService {
	return newService(
		"reservation",
		store.NewReservationStore(db),
		validation.ReservationRules(limits),
		func(r *models.Reservation) uint { return r.ID },
		customerRef(store.NewCustomerLookup(db), func(r *models.Reservation) uint { return r.CustomerID }),
	)
}

// customerRef builds the referential check for entities carrying a customer
// foreign key.
func customerRef[T any](lookup store.CustomerLookup, customerID func(*T) uint) RefCheck[T] {
	return func(ctx context.Context, entity *T) (bool, error) {
		return lookup.Exists(ctx, customerID(entity))
	}
}
