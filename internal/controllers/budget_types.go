package controllers

import (
	"github.com/budgetplanner/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type BudgetEditable struct {
	UserID           *uint               `json:"userId" example:"1"`                          // The owner of the budget
	SavedBudget      bool                `json:"savedBudget" example:"false" default:"false"` // If the budget has been saved by the user
	RMPercent        decimal.NullDecimal `json:"rmPercent" example:"32.5"`                    // Raw material share of revenue in percent
	Currency         string              `json:"currency" example:"€" default:"$"`            // The currency of the budget
	Name             string              `json:"name" example:"Bakery 2025"`
	Note             string              `json:"note" example:"Second shop opens in spring"`
	StartYear        int                 `json:"startYear" example:"2025" binding:"omitempty,min=1900,max=9999"`
	OpeningInventory decimal.Decimal     `json:"openingInventory" example:"1200"` // Value of the inventory at the start of the budget
}

// model returns the resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		UserID:           editable.UserID,
		SavedBudget:      editable.SavedBudget,
		RMPercent:        editable.RMPercent,
		Currency:         editable.Currency,
		Name:             editable.Name,
		Note:             editable.Note,
		StartYear:        editable.StartYear,
		OpeningInventory: editable.OpeningInventory,
	}
}

// patch returns a patch setting the fields named in fields
func (editable BudgetEditable) patch(fields []string) models.BudgetPatch {
	var p models.BudgetPatch

	if slices.Contains(fields, "UserID") {
		p.UserID = models.Some(editable.UserID)
	}
	if slices.Contains(fields, "SavedBudget") {
		p.SavedBudget = models.Some(editable.SavedBudget)
	}
	if slices.Contains(fields, "RMPercent") {
		p.RMPercent = models.Some(editable.RMPercent)
	}
	if slices.Contains(fields, "Currency") {
		p.Currency = models.Some(editable.Currency)
	}
	if slices.Contains(fields, "Name") {
		p.Name = models.Some(editable.Name)
	}
	if slices.Contains(fields, "Note") {
		p.Note = models.Some(editable.Note)
	}
	if slices.Contains(fields, "StartYear") {
		p.StartYear = models.Some(editable.StartYear)
	}
	if slices.Contains(fields, "OpeningInventory") {
		p.OpeningInventory = models.Some(editable.OpeningInventory)
	}

	return p
}

type BudgetQueryFilter struct {
	UserID *uint  `form:"userId" json:"userId"` // Owner of the budgets. Defaults to the configured default user
	Name   string `form:"name" json:"name"`     // Glob pattern the name must match, e.g. "Bakery*"
}
