package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/models"
	"github.com/stretchr/testify/assert"
)

var limits = config.DefaultLimits()

func validCustomer() models.Customer {
	return models.Customer{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@x.com",
		Phone:     "+1234567",
	}
}

func TestResultAddErrorIgnoresBlank(t *testing.T) {
	res := &Result{}
	res.AddError("")
	res.AddError("   ")
	res.AddError("\t\n")
	assert.True(t, res.IsValid())
	assert.Empty(t, res.ErrorText())

	res.AddError("something broke")
	assert.False(t, res.IsValid())
	assert.Equal(t, "something broke", res.ErrorText())
}

func TestResultJoinsInInsertionOrder(t *testing.T) {
	res := &Result{}
	res.AddError("first")
	res.AddError("second")
	res.AddError("third")
	assert.Equal(t, "first\nsecond\nthird", res.ErrorText())
	assert.Equal(t, []string{"first", "second", "third"}, res.Errors())
}

func TestValidCustomerPasses(t *testing.T) {
	res := CustomerRules(limits).Validate(validCustomer())
	assert.True(t, res.IsValid(), res.ErrorText())
}

func TestCustomerAccumulatesAllViolations(t *testing.T) {
	customer := models.Customer{
		FirstName: "",
		LastName:  "Ruiz",
		Email:     "bad",
		Phone:     "",
	}
	res := CustomerRules(limits).Validate(customer)
	assert.False(t, res.IsValid())
	// Not fail-fast: every violated rule reports, in rule order.
	assert.Equal(t, []string{
		"first name is required",
		"email format is not valid",
		"phone is required",
	}, res.Errors())
}

func TestCustomerLengthCaps(t *testing.T) {
	customer := validCustomer()
	customer.FirstName = strings.Repeat("a", 101)
	customer.LastName = strings.Repeat("b", 101)
	res := CustomerRules(limits).Validate(customer)
	assert.Equal(t, []string{
		"first name cannot exceed 100 characters",
		"last name cannot exceed 100 characters",
	}, res.Errors())
}

func TestCustomerEmailAndPhoneFormats(t *testing.T) {
	cases := []struct {
		email, phone string
		valid        bool
	}{
		{"ana@x.com", "+1234567", true},
		{"ana@x.com", "911", true},
		{"ana@sub.domain.org", "19876543210", true},
		{"ana@nodot", "+1234567", false},  // no dot after @
		{"an a@x.com", "+1234567", false}, // embedded whitespace
		{"ana@x.com", "0123", false},      // leading zero
		{"ana@x.com", "+0123", false},
		{"ana@x.com", "12a4", false},
	}
	for _, tc := range cases {
		customer := validCustomer()
		customer.Email = tc.email
		customer.Phone = tc.phone
		res := CustomerRules(limits).Validate(customer)
		assert.Equal(t, tc.valid, res.IsValid(), "email=%q phone=%q -> %s", tc.email, tc.phone, res.ErrorText())
	}
}

func TestWaiterRules(t *testing.T) {
	waiter := models.Waiter{FirstName: "Luis", LastName: "Mora", Shift: "Morning", YearsOfExperience: 3}
	assert.True(t, WaiterRules(limits).Validate(waiter).IsValid())

	waiter.Shift = "   "
	waiter.YearsOfExperience = -1
	res := WaiterRules(limits).Validate(waiter)
	assert.Equal(t, []string{
		"shift is required",
		"years of experience cannot be negative",
	}, res.Errors())
}

func TestDishRules(t *testing.T) {
	dish := models.Dish{Name: "Soup", Price: 4.50, Category: models.CategoryMainCourse}
	assert.True(t, DishRules(limits).Validate(dish).IsValid())

	dish.Price = 0.00
	res := DishRules(limits).Validate(dish)
	assert.Contains(t, res.Errors(), "price must be at least 0.01")

	dish.Price = 4.50
	dish.Category = "Snack"
	res = DishRules(limits).Validate(dish)
	assert.Equal(t, []string{"dish category is not valid"}, res.Errors())

	dish.Category = models.CategoryDessert
	dish.Description = strings.Repeat("x", 501)
	res = DishRules(limits).Validate(dish)
	assert.Equal(t, []string{"description cannot exceed 500 characters"}, res.Errors())

	// Blank description is allowed.
	dish.Description = ""
	assert.True(t, DishRules(limits).Validate(dish).IsValid())
}

func TestOrderRules(t *testing.T) {
	order := models.Order{
		OrderNumber: "O-1",
		OrderDate:   time.Now(),
		Status:      models.OrderStatusPending,
		CustomerID:  1,
	}
	assert.True(t, OrderRules(limits).Validate(order).IsValid())

	// Up to one day ahead is still accepted.
	order.OrderDate = time.Now().Add(23 * time.Hour)
	assert.True(t, OrderRules(limits).Validate(order).IsValid())

	order.OrderDate = time.Now().Add(48 * time.Hour)
	res := OrderRules(limits).Validate(order)
	assert.Equal(t, []string{"order date cannot be in the future"}, res.Errors())

	order = models.Order{OrderNumber: " ", OrderDate: time.Now(), Status: "Shipped", CustomerID: 0}
	res = OrderRules(limits).Validate(order)
	assert.Equal(t, []string{
		"order number is required",
		"order status is not valid",
		"a valid customer must be selected",
	}, res.Errors())
}

func TestReservationRules(t *testing.T) {
	reservation := models.Reservation{
		ReservationDate: time.Now(),
		ReservationTime: "19:30",
		NumberOfPeople:  4,
		CustomerID:      1,
	}
	assert.True(t, ReservationRules(limits).Validate(reservation).IsValid())

	reservation.NumberOfPeople = 25
	res := ReservationRules(limits).Validate(reservation)
	assert.Equal(t, []string{"number of people cannot exceed 20"}, res.Errors())

	reservation.NumberOfPeople = 0
	res = ReservationRules(limits).Validate(reservation)
	assert.Equal(t, []string{"number of people must be at least 1"}, res.Errors())

	// Today at midnight is fine; yesterday is not.
	reservation.NumberOfPeople = 2
	now := time.Now()
	reservation.ReservationDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, ReservationRules(limits).Validate(reservation).IsValid())

	reservation.ReservationDate = reservation.ReservationDate.AddDate(0, 0, -1)
	res = ReservationRules(limits).Validate(reservation)
	assert.Equal(t, []string{"reservation date cannot be before today"}, res.Errors())

	reservation.ReservationDate = time.Now()
	reservation.Notes = strings.Repeat("n", 1001)
	res = ReservationRules(limits).Validate(reservation)
	assert.Equal(t, []string{"notes cannot exceed 1000 characters"}, res.Errors())
}
