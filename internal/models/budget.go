package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a budget
//
// A budget is the top level resource. Monthly data and monthly actuals
// reference it by BudgetID.
type Budget struct {
	ID uint `json:"id" gorm:"primaryKey" example:"1"`

	// Owner of the budget, may be null
	UserID *uint `json:"userId" gorm:"index" example:"1"`

	// Set once on creation, never updated
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime:false" example:"2024-05-02T19:28:44.491514Z"`

	SavedBudget bool `json:"savedBudget" example:"false"`

	// Raw material share of revenue in percent
	RMPercent decimal.NullDecimal `json:"rmPercent" gorm:"type:DECIMAL(20,8)" example:"32.5"`

	Currency         string          `json:"currency" example:"$"`
	Name             string          `json:"name" example:"Bakery 2025"`
	Note             string          `json:"note" example:"Second shop opens in spring"`
	StartYear        int             `json:"startYear" example:"2025"`
	OpeningInventory decimal.Decimal `json:"openingInventory" gorm:"type:DECIMAL(20,8)" example:"1200"`
}

// DefaultCurrency is used for budgets created without a currency.
const DefaultCurrency = "$"

func (Budget) TableName() string { return "budgets" }

func (Budget) Self() string { return "Budget" }

func (b Budget) GetID() uint { return b.ID }

func (b *Budget) SetID(id uint) { b.ID = id }

// Clone returns a copy of b with its own UserID.
func (b Budget) Clone() Budget {
	b.UserID = NilIfZero(b.UserID)
	return b
}

// ApplyDefaults sets the values for omitted fields and stamps the
// creation time.
func (b *Budget) ApplyDefaults(now time.Time) {
	b.UserID = NilIfZero(b.UserID)
	if b.Currency == "" {
		b.Currency = DefaultCurrency
	}
	b.CreatedAt = now.UTC()
}

// BudgetPatch contains the fields of a Budget that can be updated.
type BudgetPatch struct {
	UserID           Optional[*uint]
	SavedBudget      Optional[bool]
	RMPercent        Optional[decimal.NullDecimal]
	Currency         Optional[string]
	Name             Optional[string]
	Note             Optional[string]
	StartYear        Optional[int]
	OpeningInventory Optional[decimal.Decimal]
}

// Apply writes all set fields to b.
func (p BudgetPatch) Apply(b *Budget) {
	applyID(p.UserID, &b.UserID)
	p.SavedBudget.apply(&b.SavedBudget)
	p.RMPercent.apply(&b.RMPercent)
	p.Currency.apply(&b.Currency)
	p.Name.apply(&b.Name)
	p.Note.apply(&b.Note)
	p.StartYear.apply(&b.StartYear)
	p.OpeningInventory.apply(&b.OpeningInventory)
}
