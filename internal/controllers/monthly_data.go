package controllers

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMonthlyDataRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonthlyData)
	r.GET("", co.GetMonthlyData)
	r.POST("", co.ReplaceMonthlyData)
}

func (co Controller) OptionsMonthlyData(c *gin.Context) {
	if _, ok := co.budget(c); !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// GetMonthlyData returns the monthly data of the budget, ordered by month.
func (co Controller) GetMonthlyData(c *gin.Context) {
	budget, ok := co.budget(c)
	if !ok {
		return
	}

	data, err := co.Service.ListMonthlyData(c.Request.Context(), budget.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// ReplaceMonthlyData replaces all monthly data of the budget with the
// records in the body. The body is validated before the budget is looked
// up and nothing is deleted if any record is invalid.
func (co Controller) ReplaceMonthlyData(c *gin.Context) {
	if _, err := httputil.ParseID(c, "id"); err != nil {
		abort(c, err)
		return
	}

	var editables []MonthlyDataEditable
	if err := httputil.BindData(c, &editables); err != nil {
		abort(c, err)
		return
	}

	budget, ok := co.budget(c)
	if !ok {
		return
	}

	records := make([]models.MonthlyData, 0, len(editables))
	for _, editable := range editables {
		records = append(records, editable.model())
	}

	data, err := co.Service.ReplaceMonthlyData(c.Request.Context(), budget.ID, records)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, data)
}
