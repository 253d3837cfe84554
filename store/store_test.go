package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/restaurantsys/backoffice/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Waiter{},
		&models.Dish{},
		&models.Order{},
		&models.Reservation{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestInsertAssignsIDAndIgnoresCallerID(t *testing.T) {
	db := setupTestDB(t, "store_insert")
	st := NewCustomerStore(db)
	ctx := context.Background()

	customer := &models.Customer{
		ID:        500,
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@x.com",
		Phone:     "+1234567",
	}
	id, err := st.Insert(ctx, customer)
	assert.NoError(t, err)
	assert.NotEqual(t, uint(500), id)
	assert.Equal(t, id, customer.ID)

	row, err := st.ByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", row.FirstName)
}

func TestByIDAbsentIsNilNotError(t *testing.T) {
	db := setupTestDB(t, "store_absent")
	st := NewWaiterStore(db)

	row, err := st.ByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestAllOrderedByID(t *testing.T) {
	db := setupTestDB(t, "store_order")
	st := NewWaiterStore(db)
	ctx := context.Background()

	for _, name := range []string{"Carlos", "Berta", "Ana"} {
		_, err := st.Insert(ctx, &models.Waiter{
			FirstName: name, LastName: "Mora", Shift: "Morning", YearsOfExperience: 1,
		})
		assert.NoError(t, err)
	}

	rows, err := st.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].ID, rows[i].ID)
	}
	assert.Equal(t, "Carlos", rows[0].FirstName)
}

func TestDishRoundTripKeepsEnumAndPrice(t *testing.T) {
	db := setupTestDB(t, "store_dish")
	st := NewDishStore(db)
	ctx := context.Background()

	dish := &models.Dish{Name: "Flan", Price: 12.50, Category: models.CategoryDessert}
	id, err := st.Insert(ctx, dish)
	assert.NoError(t, err)

	row, err := st.ByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryDessert, row.Category)
	assert.Equal(t, 12.50, row.Price)
}

func TestUpdateByIDReplacesFullRow(t *testing.T) {
	db := setupTestDB(t, "store_update")
	st := NewDishStore(db)
	ctx := context.Background()

	dish := &models.Dish{Name: "Soup", Description: "warm", Price: 4.00, Category: models.CategoryAppetizer}
	id, err := st.Insert(ctx, dish)
	assert.NoError(t, err)

	// Zero-valued fields must overwrite too: the description is cleared.
	replacement := &models.Dish{Name: "Gazpacho", Description: "", Price: 5.25, Category: models.CategoryAppetizer}
	affected, err := st.UpdateByID(ctx, id, replacement)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	row, err := st.ByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "Gazpacho", row.Name)
	assert.Empty(t, row.Description)
	assert.Equal(t, 5.25, row.Price)
}

func TestUpdateByIDUnknownIDAffectsNothing(t *testing.T) {
	db := setupTestDB(t, "store_update_missing")
	st := NewWaiterStore(db)

	affected, err := st.UpdateByID(context.Background(), 42, &models.Waiter{
		FirstName: "Ana", LastName: "Mora", Shift: "Night",
	})
	assert.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteByIDReportsRowsAffected(t *testing.T) {
	db := setupTestDB(t, "store_delete")
	st := NewWaiterStore(db)
	ctx := context.Background()

	id, err := st.Insert(ctx, &models.Waiter{FirstName: "Ana", LastName: "Mora", Shift: "Night"})
	assert.NoError(t, err)

	affected, err := st.DeleteByID(ctx, id)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = st.DeleteByID(ctx, id)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestCustomerLookupExists(t *testing.T) {
	db := setupTestDB(t, "store_lookup")
	ctx := context.Background()

	id, err := NewCustomerStore(db).Insert(ctx, &models.Customer{
		FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.com", Phone: "+1234567",
	})
	assert.NoError(t, err)

	lookup := NewCustomerLookup(db)
	exists, err := lookup.Exists(ctx, id)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = lookup.Exists(ctx, 999)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDeletingCustomerCascades(t *testing.T) {
	db := setupTestDB(t, "store_cascade")
	ctx := context.Background()

	customers := NewCustomerStore(db)
	orders := NewOrderStore(db)
	reservations := NewReservationStore(db)

	customerID, err := customers.Insert(ctx, &models.Customer{
		FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.com", Phone: "+1234567",
	})
	assert.NoError(t, err)

	_, err = orders.Insert(ctx, &models.Order{
		OrderNumber: "O-1", OrderDate: time.Now(), Status: models.OrderStatusPending, CustomerID: customerID,
	})
	assert.NoError(t, err)
	_, err = reservations.Insert(ctx, &models.Reservation{
		ReservationDate: time.Now(), ReservationTime: "20:00", NumberOfPeople: 2, CustomerID: customerID,
	})
	assert.NoError(t, err)

	affected, err := customers.DeleteByID(ctx, customerID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	remainingOrders, err := orders.All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, remainingOrders)

	remainingReservations, err := reservations.All(ctx)
	assert.NoError(t, err)
	assert.Empty(t, remainingReservations)
}

func TestOrderReadsPreloadCustomer(t *testing.T) {
	db := setupTestDB(t, "store_preload")
	ctx := context.Background()

	customerID, err := NewCustomerStore(db).Insert(ctx, &models.Customer{
		FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.com", Phone: "+1234567",
	})
	assert.NoError(t, err)

	orders := NewOrderStore(db)
	orderID, err := orders.Insert(ctx, &models.Order{
		OrderNumber: "O-1", OrderDate: time.Now(), Status: models.OrderStatusPending, CustomerID: customerID,
	})
	assert.NoError(t, err)

	row, err := orders.ByID(ctx, orderID)
	assert.NoError(t, err)
	if assert.NotNil(t, row.Customer) {
		assert.Equal(t, "Ana Ruiz", row.Customer.FullName())
	}
}
