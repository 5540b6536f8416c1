package service

import (
	"cmp"
	"context"
	"errors"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func monthlyActualsOfBudget(budgetID *uint) store.Predicate[models.MonthlyActual] {
	if budgetID == nil {
		return store.Where(func(a models.MonthlyActual) bool {
			return a.BudgetID == nil
		}, "budget_id IS NULL")
	}

	id := *budgetID
	return store.Where(func(a models.MonthlyActual) bool {
		return a.BudgetID != nil && *a.BudgetID == id
	}, "budget_id = ?", id)
}

func monthlyActualForMonth(budgetID *uint, month int) store.Predicate[models.MonthlyActual] {
	return monthlyActualsOfBudget(budgetID).And(store.Where(func(a models.MonthlyActual) bool {
		return a.Month == month
	}, "month = ?", month))
}

// ListMonthlyActuals returns the monthly actuals of the budget, sorted
// by month.
func (s *Service) ListMonthlyActuals(ctx context.Context, budgetID uint) ([]models.MonthlyActual, error) {
	actuals, err := s.monthlyActuals.List(ctx, monthlyActualsOfBudget(&budgetID))
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(actuals, func(a, b models.MonthlyActual) int {
		return cmp.Or(cmp.Compare(a.Month, b.Month), cmp.Compare(a.ID, b.ID))
	})

	return actuals, nil
}

// FindMonthlyActual returns the actual of the budget for the month.
func (s *Service) FindMonthlyActual(ctx context.Context, budgetID uint, month int) (models.MonthlyActual, error) {
	return s.findMonthlyActual(ctx, &budgetID, month)
}

func (s *Service) findMonthlyActual(ctx context.Context, budgetID *uint, month int) (models.MonthlyActual, error) {
	actuals, err := s.monthlyActuals.List(ctx, monthlyActualForMonth(budgetID, month))
	if err != nil {
		return models.MonthlyActual{}, err
	}

	if len(actuals) == 0 {
		return models.MonthlyActual{}, models.NotFound(&models.MonthlyActual{})
	}

	return first(actuals), nil
}

// UpsertMonthlyActual records the actual for the budget and month of the
// given actual.
//
// If there already is one, only its Cogs and ClosingInventory are
// updated, ID and RecordedAt stay. Otherwise a new one is created.
func (s *Service) UpsertMonthlyActual(ctx context.Context, actual models.MonthlyActual) (models.MonthlyActual, error) {
	// Look up the reference as Create will store it
	actual.BudgetID = models.NilIfZero(actual.BudgetID)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.findMonthlyActual(ctx, actual.BudgetID, actual.Month)
	switch {
	case err == nil:
		return s.monthlyActuals.Update(ctx, existing.ID, models.MonthlyActualPatch{
			Cogs:             models.Some(actual.Cogs),
			ClosingInventory: models.Some(actual.ClosingInventory),
		})

	case errors.Is(err, models.ErrResourceNotFound):
		return s.monthlyActuals.Create(ctx, actual)

	default:
		return models.MonthlyActual{}, err
	}
}

func (s *Service) DeleteMonthlyActual(ctx context.Context, id uint) (bool, error) {
	return s.monthlyActuals.Delete(ctx, id)
}

// DeleteMonthlyActualsForBudget deletes all monthly actuals of the budget
// with the same best effort semantics as DeleteMonthlyDataForBudget.
func (s *Service) DeleteMonthlyActualsForBudget(ctx context.Context, budgetID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complete, err := deleteMatching(ctx, s.monthlyActuals, monthlyActualsOfBudget(&budgetID))
	if !complete || err != nil {
		log.Warn().Err(err).Uint("budget", budgetID).Msg("Not all monthly actuals of the budget could be deleted")
	}

	return complete, err
}
