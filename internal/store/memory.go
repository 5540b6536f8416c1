package store

import (
	"context"
	"sync"
	"time"

	"github.com/budgetplanner/backend/internal/models"
)

// Memory is a Store keeping all resources in a map.
//
// Every operation holds the lock for its whole read-compute-write cycle,
// so operations on the same Memory never interleave. Resources are
// cloned on the way in and out, callers never hold references into
// stored rows.
type Memory[T any, PT entity[T]] struct {
	mu   sync.RWMutex
	seq  Sequence
	rows map[uint]T
	now  func() time.Time
}

var _ Store[models.Budget] = (*Memory[models.Budget, *models.Budget])(nil)

// NewMemory returns an empty Memory store. now is used to stamp
// creation times; time.Now is used if it is nil.
func NewMemory[T any, PT entity[T]](now func() time.Time) *Memory[T, PT] {
	if now == nil {
		now = time.Now
	}

	return &Memory[T, PT]{
		rows: make(map[uint]T),
		now:  now,
	}
}

// NewMemoryStores returns the collections of an in-memory backend.
func NewMemoryStores(now func() time.Time) Stores {
	return Stores{
		Users:          NewMemory[models.User](now),
		Budgets:        NewMemory[models.Budget](now),
		MonthlyData:    NewMemory[models.MonthlyData](now),
		MonthlyActuals: NewMemory[models.MonthlyActual](now),
	}
}

func (s *Memory[T, PT]) Get(_ context.Context, id uint) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[id]
	if !ok {
		var zero T
		return zero, models.NotFound(PT(&zero))
	}

	return PT(&r).Clone(), nil
}

func (s *Memory[T, PT]) List(_ context.Context, p Predicate[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0)
	for _, r := range s.rows {
		if p.Match(r) {
			result = append(result, PT(&r).Clone())
		}
	}

	return result, nil
}

func (s *Memory[T, PT]) Create(_ context.Context, resource T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(&resource)
	p.SetID(s.seq.Next())
	p.ApplyDefaults(s.now())

	s.rows[p.GetID()] = p.Clone()
	return p.Clone(), nil
}

func (s *Memory[T, PT]) Update(_ context.Context, id uint, patch Patch[T]) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		var zero T
		return zero, models.NotFound(PT(&zero))
	}

	patch.Apply(&r)
	PT(&r).SetID(id)

	s.rows[id] = PT(&r).Clone()
	return PT(&r).Clone(), nil
}

func (s *Memory[T, PT]) Delete(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}

	delete(s.rows, id)
	return true, nil
}
