package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/restaurantsys/backoffice/config"
	"github.com/restaurantsys/backoffice/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// CustomerRules validates first/last name, email and phone.
func CustomerRules(limits config.Limits) Validator[models.Customer] {
	return NewValidator(
		func(c models.Customer, res *Result) {
			if blank(c.FirstName) {
				res.AddError("first name is required")
			} else if tooLong(c.FirstName, limits.MaxNameLength) {
				res.AddError(fmt.Sprintf("first name cannot exceed %d characters", limits.MaxNameLength))
			}
		},
		func(c models.Customer, res *Result) {
			if blank(c.LastName) {
				res.AddError("last name is required")
			} else if tooLong(c.LastName, limits.MaxNameLength) {
				res.AddError(fmt.Sprintf("last name cannot exceed %d characters", limits.MaxNameLength))
			}
		},
		func(c models.Customer, res *Result) {
			if blank(c.Email) {
				res.AddError("email is required")
			} else if tooLong(c.Email, limits.MaxEmailLength) {
				res.AddError(fmt.Sprintf("email cannot exceed %d characters", limits.MaxEmailLength))
			} else if !emailPattern.MatchString(c.Email) {
				res.AddError("email format is not valid")
			}
		},
		func(c models.Customer, res *Result) {
			if blank(c.Phone) {
				res.AddError("phone is required")
			} else if tooLong(c.Phone, limits.MaxPhoneLength) {
				res.AddError(fmt.Sprintf("phone cannot exceed %d characters", limits.MaxPhoneLength))
			} else if !phonePattern.MatchString(c.Phone) {
				res.AddError("phone format is not valid")
			}
		},
	)
}

// WaiterRules validates names, shift and experience.
func WaiterRules(limits config.Limits) Validator[models.Waiter] {
	return NewValidator(
		func(w models.Waiter, res *Result) {
			if blank(w.FirstName) {
				res.AddError("first name is required")
			} else if tooLong(w.FirstName, limits.MaxNameLength) {
				res.AddError(fmt.Sprintf("first name cannot exceed %d characters", limits.MaxNameLength))
			}
		},
		func(w models.Waiter, res *Result) {
			if blank(w.LastName) {
				res.AddError("last name is required")
			} else if tooLong(w.LastName, limits.MaxNameLength) {
				res.AddError(fmt.Sprintf("last name cannot exceed %d characters", limits.MaxNameLength))
			}
		},
		func(w models.Waiter, res *Result) {
			if blank(w.Shift) {
				res.AddError("shift is required")
			}
		},
		func(w models.Waiter, res *Result) {
			if w.YearsOfExperience < 0 {
				res.AddError("years of experience cannot be negative")
			}
		},
	)
}

// DishRules validates name, description, price and category.
func DishRules(limits config.Limits) Validator[models.Dish] {
	return NewValidator(
		func(d models.Dish, res *Result) {
			if blank(d.Name) {
				res.AddError("dish name is required")
			} else if tooLong(d.Name, limits.MaxNameLength) {
				res.AddError(fmt.Sprintf("dish name cannot exceed %d characters", limits.MaxNameLength))
			}
		},
		func(d models.Dish, res *Result) {
			if tooLong(d.Description, limits.MaxDescriptionLength) {
				res.AddError(fmt.Sprintf("description cannot exceed %d characters", limits.MaxDescriptionLength))
			}
		},
		func(d models.Dish, res *Result) {
			if d.Price < limits.MinPrice {
				res.AddError(fmt.Sprintf("price must be at least %.2f", limits.MinPrice))
			}
		},
		func(d models.Dish, res *Result) {
			if !d.Category.Valid() {
				res.AddError("dish category is not valid")
			}
		},
	)
}

// OrderRules validates the order number, status, customer reference and date.
// An order date up to one day ahead is accepted; anything later is rejected.
func OrderRules(limits config.Limits) Validator[models.Order] {
	return NewValidator(
		func(o models.Order, res *Result) {
			if blank(o.OrderNumber) {
				res.AddError("order number is required")
			}
		},
		func(o models.Order, res *Result) {
			if !o.Status.Valid() {
				res.AddError("order status is not valid")
			}
		},
		func(o models.Order, res *Result) {
			if o.CustomerID == 0 {
				res.AddError("a valid customer must be selected")
			}
		},
		func(o models.Order, res *Result) {
			if o.OrderDate.After(time.Now().Add(24 * time.Hour)) {
				res.AddError("order date cannot be in the future")
			}
		},
	)
}

// ReservationRules validates the party size, customer reference, date and
// notes. Unlike orders, reservation dates are compared against midnight of
// the current day: today is fine, yesterday is not.
func ReservationRules(limits config.Limits) Validator[models.Reservation] {
	return NewValidator(
		func(r models.Reservation, res *Result) {
			if r.NumberOfPeople < limits.MinPeople {
				res.AddError(fmt.Sprintf("number of people must be at least %d", limits.MinPeople))
			} else if r.NumberOfPeople > limits.MaxPeople {
				res.AddError(fmt.Sprintf("number of people cannot exceed %d", limits.MaxPeople))
			}
		},
		func(r models.Reservation, res *Result) {
			if r.CustomerID == 0 {
				res.AddError("a valid customer must be selected")
			}
		},
		func(r models.Reservation, res *Result) {
			now := time.Now()
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if r.ReservationDate.Before(today) {
				res.AddError("reservation date cannot be before today")
			}
		},
		func(r models.Reservation, res *Result) {
			if tooLong(r.Notes, limits.MaxNotesLength) {
				res.AddError(fmt.Sprintf("notes cannot exceed %d characters", limits.MaxNotesLength))
			}
		},
	)
}
