package test

import (
	"context"
	"errors"

	"github.com/budgetplanner/backend/internal/store"
)

// ErrDeleteFailed is returned by FailingDeletes.
var ErrDeleteFailed = errors.New("disk I/O error")

// FailingDeletes wraps a store. Deleting the resource with the ID Fail
// fails with ErrDeleteFailed, all other operations are passed through.
type FailingDeletes[T any] struct {
	store.Store[T]
	Fail uint
}

func (s FailingDeletes[T]) Delete(ctx context.Context, id uint) (bool, error) {
	if id == s.Fail {
		return false, ErrDeleteFailed
	}

	return s.Store.Delete(ctx, id)
}
