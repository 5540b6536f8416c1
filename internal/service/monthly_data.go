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

func monthlyDataOfBudget(budgetID uint) store.Predicate[models.MonthlyData] {
	return store.Where(func(m models.MonthlyData) bool {
		return m.BudgetID != nil && *m.BudgetID == budgetID
	}, "budget_id = ?", budgetID)
}

// ListMonthlyData returns the monthly data of the budget, sorted by month.
func (s *Service) ListMonthlyData(ctx context.Context, budgetID uint) ([]models.MonthlyData, error) {
	data, err := s.monthlyData.List(ctx, monthlyDataOfBudget(budgetID))
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(data, func(a, b models.MonthlyData) int {
		return cmp.Or(cmp.Compare(a.Month, b.Month), cmp.Compare(a.ID, b.ID))
	})

	return data, nil
}

func (s *Service) CreateMonthlyData(ctx context.Context, data models.MonthlyData) (models.MonthlyData, error) {
	return s.monthlyData.Create(ctx, data)
}

func (s *Service) UpdateMonthlyData(ctx context.Context, id uint, patch models.MonthlyDataPatch) (models.MonthlyData, error) {
	return s.monthlyData.Update(ctx, id, patch)
}

// ReplaceMonthlyData deletes all monthly data of the budget and creates
// one row per record in the order given. Months missing in records are
// gone afterwards.
func (s *Service) ReplaceMonthlyData(ctx context.Context, budgetID uint, records []models.MonthlyData) ([]models.MonthlyData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complete, err := s.deleteMonthlyDataForBudget(ctx, budgetID)
	if !complete {
		return nil, errors.Join(models.ErrCascadeIncomplete, err)
	}

	created := make([]models.MonthlyData, 0, len(records))
	for _, record := range records {
		id := budgetID
		record.BudgetID = &id

		data, err := s.monthlyData.Create(ctx, record)
		if err != nil {
			return nil, err
		}
		created = append(created, data)
	}

	return created, nil
}

// DeleteMonthlyDataForBudget deletes all monthly data of the budget.
//
// This is best effort: it reports false if any row could not be deleted,
// rows deleted before are not restored.
func (s *Service) DeleteMonthlyDataForBudget(ctx context.Context, budgetID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteMonthlyDataForBudget(ctx, budgetID)
}

func (s *Service) deleteMonthlyDataForBudget(ctx context.Context, budgetID uint) (bool, error) {
	complete, err := deleteMatching(ctx, s.monthlyData, monthlyDataOfBudget(budgetID))
	if !complete || err != nil {
		log.Warn().Err(err).Uint("budget", budgetID).Msg("Not all monthly data of the budget could be deleted")
	}

	return complete, err
}
