package controllers

import (
	"cmp"
	"errors"
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for budgets and their
// monthly data and actuals with the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}

	co.RegisterMonthlyDataRoutes(r.Group("/:id/monthly-data"))
	co.RegisterMonthlyActualRoutes(r.Group("/:id/monthly-actuals"))
}

// budget returns the budget with the ID from the path. If the bool is
// false, the error response has already been sent.
func (co Controller) budget(c *gin.Context) (models.Budget, bool) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abort(c, err)
		return models.Budget{}, false
	}

	budget, err := co.Service.GetBudget(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return models.Budget{}, false
	}

	return budget, true
}

func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	if _, ok := co.budget(c); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetBudgets returns the budgets of a user, ordered by ID.
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		abort(c, err)
		return
	}

	userID := co.DefaultUserID
	if filter.UserID != nil {
		userID = *filter.UserID
	}

	budgets, err := co.Service.ListBudgetsForUser(c.Request.Context(), userID)
	if err != nil {
		abort(c, err)
		return
	}

	if filter.Name != "" {
		budgets = slices.DeleteFunc(budgets, func(b models.Budget) bool {
			return !glob.Glob(filter.Name, b.Name)
		})
	}

	slices.SortFunc(budgets, func(a, b models.Budget) int {
		return cmp.Compare(a.ID, b.ID)
	})

	c.JSON(http.StatusOK, budgets)
}

func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	budget, err := co.Service.CreateBudget(c.Request.Context(), editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

func (co Controller) GetBudget(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, budget)
}

// UpdateBudget updates the fields of the budget that are set in the body.
// Fields not in the body keep their value.
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	budget, err = co.Service.UpdateBudget(c.Request.Context(), budget.ID, data.patch(updateFields))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// DeleteBudget deletes the budget and its monthly data. The monthly
// actuals of the budget are kept, they are deleted with
// DELETE /budgets/:id/monthly-actuals.
//
// If not all monthly data can be deleted, the budget is kept.
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	complete, err := co.Service.DeleteMonthlyDataForBudget(c.Request.Context(), budget.ID)
	if !complete {
		abort(c, errors.Join(models.ErrCascadeIncomplete, err))
		return
	}

	deleted, err := co.Service.DeleteBudget(c.Request.Context(), budget.ID)
	if err != nil {
		abort(c, err)
		return
	}

	if !deleted {
		abort(c, models.NotFound(&budget))
		return
	}

	c.Status(http.StatusNoContent)
}
