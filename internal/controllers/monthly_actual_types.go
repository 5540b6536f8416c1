package controllers

import (
	"github.com/budgetplanner/backend/internal/models"
	"github.com/shopspring/decimal"
)

type MonthlyActualEditable struct {
	Month            *int             `json:"month" example:"3" binding:"required,min=0,max=11"` // 0 is January, 11 is December
	Cogs             *decimal.Decimal `json:"cogs" example:"100" binding:"required"`            // Cost of goods sold
	ClosingInventory *decimal.Decimal `json:"closingInventory" example:"50" binding:"required"` // Value of the inventory at the end of the month
}

func (editable MonthlyActualEditable) model(budgetID uint) models.MonthlyActual {
	return models.MonthlyActual{
		BudgetID:         &budgetID,
		Month:            *editable.Month,
		Cogs:             *editable.Cogs,
		ClosingInventory: *editable.ClosingInventory,
	}
}
