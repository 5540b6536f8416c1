// Package service implements the rules spanning the resources of the
// budget planner on top of the stores.
package service

import (
	"cmp"
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/store"
	"golang.org/x/exp/slices"
)

// Service composes the stores of all resource kinds.
//
// Single store operations are atomic on their own. Operations made of
// several store calls that must not interleave (upserting an actual,
// replacing monthly data, creating a user with a unique name, cascades)
// are serialised by mu. Cascades are not transactional: a failure in the
// middle leaves the rows deleted so far deleted.
type Service struct {
	users          store.Store[models.User]
	budgets        store.Store[models.Budget]
	monthlyData    store.Store[models.MonthlyData]
	monthlyActuals store.Store[models.MonthlyActual]

	mu sync.Mutex
}

// New returns a Service using the stores.
func New(s store.Stores) *Service {
	return &Service{
		users:          s.Users,
		budgets:        s.Budgets,
		monthlyData:    s.MonthlyData,
		monthlyActuals: s.MonthlyActuals,
	}
}

// deleteMatching deletes every resource matching p. It continues after
// failed deletions and reports whether all of them succeeded.
func deleteMatching[T interface{ GetID() uint }](ctx context.Context, s store.Store[T], p store.Predicate[T]) (bool, error) {
	rows, err := s.List(ctx, p)
	if err != nil {
		return false, err
	}

	complete := true
	var errs []error
	for _, r := range rows {
		deleted, err := s.Delete(ctx, r.GetID())
		if err != nil {
			errs = append(errs, err)
		}

		if !deleted {
			complete = false
		}
	}

	return complete, errors.Join(errs...)
}

// first returns the resource with the lowest ID.
func first[T interface{ GetID() uint }](rows []T) T {
	return slices.MinFunc(rows, func(a, b T) int {
		return cmp.Compare(a.GetID(), b.GetID())
	})
}

// GetUser returns the user with the ID.
func (s *Service) GetUser(ctx context.Context, id uint) (models.User, error) {
	return s.users.Get(ctx, id)
}

// GetUserByUsername returns the user with the username.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := s.users.List(ctx, store.Where(func(u models.User) bool {
		return u.Username == username
	}, "username = ?", username))
	if err != nil {
		return models.User{}, err
	}

	if len(users) == 0 {
		return models.User{}, models.NotFound(&models.User{})
	}

	return first(users), nil
}

// CreateUser creates a user. Usernames are trimmed and must be unique.
func (s *Service) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return models.User{}, models.ErrUsernameEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return models.User{}, models.ErrUsernameInUse
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, err
	}

	return s.users.Create(ctx, user)
}
