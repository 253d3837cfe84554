// Package services implements the mutation pipeline every entity kind shares:
// validate, check references, persist, map the outcome to an OperationResult.
package services

import (
	"context"
	"fmt"

	"github.com/restaurantsys/backoffice/results"
	"github.com/restaurantsys/backoffice/store"
	"github.com/restaurantsys/backoffice/utils"
	"github.com/restaurantsys/backoffice/validation"
)

const (
	SuccessMessage         = "Operation completed successfully"
	NotFoundMessage        = "Record not found"
	CustomerMissingMessage = "the specified customer does not exist"
)

// RefCheck reports whether the row an entity references exists. Services for
// entities without foreign keys carry a nil check.
type RefCheck[T any] func(ctx context.Context, entity *T) (bool, error)

// Service runs the shared pipeline for one entity kind. Reads skip
// validation entirely; writes never reach the store with invalid input, and
// no store fault escapes as an error; every outcome is an OperationResult.
type Service[T any] struct {
	name      string
	store     store.Store[T]
	validator validation.Validator[T]
	id        func(*T) uint
	refCheck  RefCheck[T]
}

func newService[T any](
	name string,
	st store.Store[T],
	validator validation.Validator[T],
	id func(*T) uint,
	refCheck RefCheck[T],
) *Service[T] {
	return &Service[T]{
		name:      name,
		store:     st,
		validator: validator,
		id:        id,
		refCheck:  refCheck,
	}
}

// GetAll returns every stored row in ascending id order.
func (s *Service[T]) GetAll(ctx context.Context) ([]T, error) {
	return s.store.All(ctx)
}

// GetByID returns nil for an unknown or zero id; absence is not an error.
func (s *Service[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	return s.store.ByID(ctx, id)
}

// Create validates, confirms any referenced customer exists, then inserts.
// The returned payload carries the store-assigned id; a caller-supplied id
// is ignored.
func (s *Service[T]) Create(ctx context.Context, entity *T) results.OperationResult[T] {
	if res := s.validator.Validate(*entity); !res.IsValid() {
		return results.Failure[T](res.ErrorText())
	}
	if message, detail, ok := s.checkReference(ctx, entity, "create"); !ok {
		return failWith[T](message, detail)
	}
	if _, err := s.store.Insert(ctx, entity); err != nil {
		utils.ErrorLogger.Printf("could not create %s: %v", s.name, err)
		return results.Failure[T](fmt.Sprintf("could not create %s", s.name), err.Error())
	}
	return results.Success(*entity, SuccessMessage)
}

// Update re-validates and re-checks references, then replaces the full row
// matched by the entity's id. An id the store does not know yields the
// not-found failure.
func (s *Service[T]) Update(ctx context.Context, entity *T) results.OperationResult[bool] {
	if res := s.validator.Validate(*entity); !res.IsValid() {
		return results.Failure[bool](res.ErrorText())
	}
	if message, detail, ok := s.checkReference(ctx, entity, "update"); !ok {
		return failWith[bool](message, detail)
	}
	affected, err := s.store.UpdateByID(ctx, s.id(entity), entity)
	if err != nil {
		utils.ErrorLogger.Printf("could not update %s %d: %v", s.name, s.id(entity), err)
		return results.Failure[bool](fmt.Sprintf("could not update %s", s.name), err.Error())
	}
	if affected == 0 {
		return results.Failure[bool](NotFoundMessage)
	}
	return results.OK(SuccessMessage)
}

// Delete removes the row by id. No referential check runs here; related rows
// are handled by the store's cascade rules.
func (s *Service[T]) Delete(ctx context.Context, id uint) results.OperationResult[bool] {
	if id == 0 {
		return results.Failure[bool](fmt.Sprintf("invalid %s id", s.name))
	}
	affected, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		utils.ErrorLogger.Printf("could not delete %s %d: %v", s.name, id, err)
		return results.Failure[bool](fmt.Sprintf("could not delete %s", s.name), err.Error())
	}
	if affected == 0 {
		return results.Failure[bool](NotFoundMessage)
	}
	return results.OK(SuccessMessage)
}

// checkReference runs the referential probe when the entity declares one.
// The bool is false when the write must not proceed; detail is set only when
// the probe itself faulted.
func (s *Service[T]) checkReference(ctx context.Context, entity *T, op string) (message, detail string, ok bool) {
	if s.refCheck == nil {
		return "", "", true
	}
	exists, err := s.refCheck(ctx, entity)
	if err != nil {
		utils.ErrorLogger.Printf("could not %s %s: customer lookup failed: %v", op, s.name, err)
		return fmt.Sprintf("could not %s %s", op, s.name), err.Error(), false
	}
	if !exists {
		return CustomerMissingMessage, "", false
	}
	return "", "", true
}

// failWith builds a Failure, attaching detail only when a fault produced one.
func failWith[T any](message, detail string) results.OperationResult[T] {
	if detail == "" {
		return results.Failure[T](message)
	}
	return results.Failure[T](message, detail)
}
