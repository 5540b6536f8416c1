// Package store contains the keyed collections that hold the resources
// of the budget planner.
//
// Every kind of resource has its own Store. Two implementations exist:
// Memory keeps everything in process memory, SQL persists through gorm.
package store

import (
	"context"

	"github.com/budgetplanner/backend/internal/models"
)

// Store is the contract every collection fulfils.
type Store[T any] interface {
	// Get returns the resource with the ID. If there is none, the error
	// wraps models.ErrResourceNotFound.
	Get(ctx context.Context, id uint) (T, error)

	// List returns all resources matching the predicate in unspecified order.
	List(ctx context.Context, p Predicate[T]) ([]T, error)

	// Create assigns a new ID, applies the defaults of the resource and
	// saves it.
	Create(ctx context.Context, resource T) (T, error)

	// Update applies the patch to the resource with the ID. If there is
	// none, the error wraps models.ErrResourceNotFound.
	Update(ctx context.Context, id uint, patch Patch[T]) (T, error)

	// Delete removes the resource and reports if it existed.
	Delete(ctx context.Context, id uint) (bool, error)
}

// Patch is a set of field updates for a resource.
type Patch[T any] interface {
	Apply(resource *T)
}

// entity is the constraint for the pointer type of stored resources.
type entity[T any] interface {
	*T
	models.Entity

	// Clone returns a copy that does not share references with the
	// original.
	Clone() T
}

// Stores bundles the collections for all resource kinds of one backend.
type Stores struct {
	Users          Store[models.User]
	Budgets        Store[models.Budget]
	MonthlyData    Store[models.MonthlyData]
	MonthlyActuals Store[models.MonthlyActual]

	ping  func(context.Context) error
	close func() error
}

// Ping verifies that the backend is usable.
func (s Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the resources held by the backend.
func (s Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
