package controllers

import (
	"github.com/budgetplanner/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MonthlyDataEditable is one month of planned figures. The budget is
// always the one from the path.
type MonthlyDataEditable struct {
	Month     *int            `json:"month" example:"3" binding:"required,min=0,max=11"` // 0 is January, 11 is December
	IsActual  bool            `json:"isActual" example:"false" default:"false"`
	Revenue   decimal.Decimal `json:"revenue" example:"5400"`
	Purchases decimal.Decimal `json:"purchases" example:"1800"`
	Expenses  decimal.Decimal `json:"expenses" example:"2100"`
	Cogs      decimal.Decimal `json:"cogs" example:"1750"`
}

func (editable MonthlyDataEditable) model() models.MonthlyData {
	return models.MonthlyData{
		Month:     *editable.Month,
		IsActual:  editable.IsActual,
		Revenue:   editable.Revenue,
		Purchases: editable.Purchases,
		Expenses:  editable.Expenses,
		Cogs:      editable.Cogs,
	}
}
