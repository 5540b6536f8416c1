package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyData holds the planned figures of a budget for one month.
type MonthlyData struct {
	ID        uint            `json:"id" gorm:"primaryKey" example:"1"`
	BudgetID  *uint           `json:"budgetId" gorm:"index" example:"1"`
	Month     int             `json:"month" example:"3"` // 0 is January, 11 is December
	IsActual  bool            `json:"isActual" example:"false"`
	Revenue   decimal.Decimal `json:"revenue" gorm:"type:DECIMAL(20,8)" example:"5400"`
	Purchases decimal.Decimal `json:"purchases" gorm:"type:DECIMAL(20,8)" example:"1800"`
	Expenses  decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"2100"`
	Cogs      decimal.Decimal `json:"cogs" gorm:"type:DECIMAL(20,8)" example:"1750"`
}

func (MonthlyData) TableName() string { return "monthly_data" }

func (MonthlyData) Self() string { return "Monthly data" }

func (m MonthlyData) GetID() uint { return m.ID }

func (m *MonthlyData) SetID(id uint) { m.ID = id }

func (m MonthlyData) Clone() MonthlyData {
	m.BudgetID = NilIfZero(m.BudgetID)
	return m
}

func (m *MonthlyData) ApplyDefaults(_ time.Time) {
	m.BudgetID = NilIfZero(m.BudgetID)
}

type MonthlyDataPatch struct {
	BudgetID  Optional[*uint]
	Month     Optional[int]
	IsActual  Optional[bool]
	Revenue   Optional[decimal.Decimal]
	Purchases Optional[decimal.Decimal]
	Expenses  Optional[decimal.Decimal]
	Cogs      Optional[decimal.Decimal]
}

func (p MonthlyDataPatch) Apply(m *MonthlyData) {
	applyID(p.BudgetID, &m.BudgetID)
	p.Month.apply(&m.Month)
	p.IsActual.apply(&m.IsActual)
	p.Revenue.apply(&m.Revenue)
	p.Purchases.apply(&m.Purchases)
	p.Expenses.apply(&m.Expenses)
	p.Cogs.apply(&m.Cogs)
}
