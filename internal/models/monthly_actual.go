package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyActual is the recorded outcome of one month of a budget.
//
// There is at most one MonthlyActual per budget and month. The service
// enforces this by upserting on (BudgetID, Month).
type MonthlyActual struct {
	ID               uint            `json:"id" gorm:"primaryKey" example:"1"`
	BudgetID         *uint           `json:"budgetId" gorm:"index:idx_actual_budget_month" example:"1"`
	Month            int             `json:"month" gorm:"index:idx_actual_budget_month" example:"3"`
	Cogs             decimal.Decimal `json:"cogs" gorm:"type:DECIMAL(20,8)" example:"100"`
	ClosingInventory decimal.Decimal `json:"closingInventory" gorm:"type:DECIMAL(20,8)" example:"50"`
	RecordedAt       time.Time       `json:"recordedAt" example:"2024-05-02T19:28:44.491514Z"`
}

func (MonthlyActual) TableName() string { return "monthly_actuals" }

func (MonthlyActual) Self() string { return "Monthly actual" }

func (a MonthlyActual) GetID() uint { return a.ID }

func (a *MonthlyActual) SetID(id uint) { a.ID = id }

func (a MonthlyActual) Clone() MonthlyActual {
	a.BudgetID = NilIfZero(a.BudgetID)
	return a
}

func (a *MonthlyActual) ApplyDefaults(now time.Time) {
	a.BudgetID = NilIfZero(a.BudgetID)
	a.RecordedAt = now.UTC()
}

type MonthlyActualPatch struct {
	BudgetID         Optional[*uint]
	Month            Optional[int]
	Cogs             Optional[decimal.Decimal]
	ClosingInventory Optional[decimal.Decimal]
}

func (p MonthlyActualPatch) Apply(a *MonthlyActual) {
	applyID(p.BudgetID, &a.BudgetID)
	p.Month.apply(&a.Month)
	p.Cogs.apply(&a.Cogs)
	p.ClosingInventory.apply(&a.ClosingInventory)
}
