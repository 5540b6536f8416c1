package controllers

import (
	"errors"
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMonthlyActualRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsMonthlyActualList)
		r.GET("", co.GetMonthlyActuals)
		r.POST("", co.UpsertMonthlyActual)
		r.DELETE("", co.DeleteMonthlyActuals)
	}

	// Actual for a month
	{
		r.OPTIONS("/:month", co.OptionsMonthlyActualDetail)
		r.GET("/:month", co.GetMonthlyActual)
		r.DELETE("/:month", co.DeleteMonthlyActual)
	}
}

// monthlyActual returns the actual for the budget and month from the
// path. If the bool is false, the error response has already been sent.
//
// The month is validated before the budget is looked up.
func (co Controller) monthlyActual(c *gin.Context) (models.MonthlyActual, bool) {
	if _, err := httputil.ParseID(c, "id"); err != nil {
		abort(c, err)
		return models.MonthlyActual{}, false
	}

	month, err := httputil.ParseMonth(c, "month")
	if err != nil {
		abort(c, err)
		return models.MonthlyActual{}, false
	}

	budget, ok := co.budget(c)
	if !ok {
		return models.MonthlyActual{}, false
	}

	actual, err := co.Service.FindMonthlyActual(c.Request.Context(), budget.ID, month)
	if err != nil {
		abort(c, err)
		return models.MonthlyActual{}, false
	}

	return actual, true
}

func (co Controller) OptionsMonthlyActualList(c *gin.Context) {
	if _, ok := co.budget(c); !ok {
		return
	}

	httputil.OptionsGetPostDelete(c)
}

func (co Controller) OptionsMonthlyActualDetail(c *gin.Context) {
	if _, ok := co.monthlyActual(c); !ok {
		return
	}

	httputil.OptionsGetDelete(c)
}

// GetMonthlyActuals returns the actuals of the budget, ordered by month.
func (co Controller) GetMonthlyActuals(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	actuals, err := co.Service.ListMonthlyActuals(c.Request.Context(), budget.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, actuals)
}

// UpsertMonthlyActual records the actual for a month of the budget. An
// existing actual for the month is updated in place.
func (co Controller) UpsertMonthlyActual(c *gin.Context) {
	if _, err := httputil.ParseID(c, "id"); err != nil {
		abort(c, err)
		return
	}

	var editable MonthlyActualEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	budget, ok := co.budget(c)
	if !ok {
		return
	}

	actual, err := co.Service.UpsertMonthlyActual(c.Request.Context(), editable.model(budget.ID))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, actual)
}

// DeleteMonthlyActuals deletes all actuals of the budget.
func (co Controller) DeleteMonthlyActuals(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	complete, err := co.Service.DeleteMonthlyActualsForBudget(c.Request.Context(), budget.ID)
	if !complete {
		abort(c, errors.Join(models.ErrCascadeIncomplete, err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) GetMonthlyActual(c *gin.Context) {
	actual, ok := co.monthlyActual(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, actual)
}

func (co Controller) DeleteMonthlyActual(c *gin.Context) {
	actual, ok := co.monthlyActual(c)
	if !ok {
		return
	}

	deleted, err := co.Service.DeleteMonthlyActual(c.Request.Context(), actual.ID)
	if err != nil {
		abort(c, err)
		return
	}

	if !deleted {
		abort(c, models.NotFound(&actual))
		return
	}

	c.Status(http.StatusNoContent)
}
