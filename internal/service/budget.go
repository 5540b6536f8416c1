package service

import (
	"context"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/store"
)

func budgetsOfUser(userID uint) store.Predicate[models.Budget] {
	return store.Where(func(b models.Budget) bool {
		return b.UserID != nil && *b.UserID == userID
	}, "user_id = ?", userID)
}

// ListBudgetsForUser returns all budgets of the user in unspecified order.
func (s *Service) ListBudgetsForUser(ctx context.Context, userID uint) ([]models.Budget, error) {
	return s.budgets.List(ctx, budgetsOfUser(userID))
}

func (s *Service) GetBudget(ctx context.Context, id uint) (models.Budget, error) {
	return s.budgets.Get(ctx, id)
}

// CreateBudget creates a budget. Omitted fields get their defaults, see
// models.Budget.ApplyDefaults.
func (s *Service) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	return s.budgets.Create(ctx, budget)
}

func (s *Service) UpdateBudget(ctx context.Context, id uint, patch models.BudgetPatch) (models.Budget, error) {
	return s.budgets.Update(ctx, id, patch)
}

// DeleteBudget deletes only the budget itself.
//
// Monthly data and monthly actuals of the budget are not touched. Call
// DeleteMonthlyDataForBudget (and DeleteMonthlyActualsForBudget if the
// actuals should go as well) before to not leave orphaned rows.
func (s *Service) DeleteBudget(ctx context.Context, id uint) (bool, error) {
	return s.budgets.Delete(ctx, id)
}
