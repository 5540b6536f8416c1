package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthlyActualUpsert() {
	budget := suite.createTestBudget(map[string]any{"userId": 1})
	suite.Require().Equal(uint(1), budget.ID)

	first := suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 3, "cogs": 100, "closingInventory": 50})
	suite.Assert().Equal(uint(1), first.ID)
	suite.Assert().Equal(budget.ID, *first.BudgetID)

	second := suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 3, "cogs": 120, "closingInventory": 60})
	suite.Assert().Equal(uint(1), second.ID)
	suite.Assert().True(second.Cogs.Equal(decimal.NewFromInt(120)))
	suite.Assert().True(second.ClosingInventory.Equal(decimal.NewFromInt(60)))
	suite.Assert().True(first.RecordedAt.Equal(second.RecordedAt))

	r := suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/monthly-actuals", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var actuals []models.MonthlyActual
	test.DecodeResponse(suite.T(), &r, &actuals)
	suite.Assert().Len(actuals, 1)
}

func (suite *TestSuiteStandard) TestMonthlyActualUpsertFails() {
	budget := suite.createTestBudget(map[string]any{})
	path := fmt.Sprintf("/api/budgets/%d/monthly-actuals", budget.ID)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"Month too large", path, map[string]any{"month": 12, "cogs": 1, "closingInventory": 1}, http.StatusBadRequest, "month must be at most 11"},
		{"Month negative", path, map[string]any{"month": -1, "cogs": 1, "closingInventory": 1}, http.StatusBadRequest, "month must be at least 0"},
		{"Fields missing", path, map[string]any{"month": 2}, http.StatusBadRequest, "cogs is required; closingInventory is required"},
		{"Empty body", path, "", http.StatusBadRequest, "the request body must not be empty"},
		{"Invalid budget ID", "/api/budgets/x/monthly-actuals", map[string]any{"month": 2, "cogs": 1, "closingInventory": 1}, http.StatusBadRequest, "the specified resource ID is not a valid positive integer"},
		{"Budget not found", "/api/budgets/99/monthly-actuals", map[string]any{"month": 2, "cogs": 1, "closingInventory": 1}, http.StatusNotFound, "there is no budget matching your query"},
		// The month is checked before the budget
		{"Invalid month, budget not found", "/api/budgets/99/monthly-actuals", map[string]any{"month": 12, "cogs": 1, "closingInventory": 1}, http.StatusBadRequest, "month must be at most 11"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyActualGet() {
	budget := suite.createTestBudget(map[string]any{})
	actual := suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 11, "cogs": 7, "closingInventory": 8})

	r := suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/monthly-actuals/11", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got models.MonthlyActual
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Equal(actual.ID, got.ID)
	suite.Assert().True(got.Cogs.Equal(decimal.NewFromInt(7)))
}

func (suite *TestSuiteStandard) TestMonthlyActualGetFails() {
	budget := suite.createTestBudget(map[string]any{})
	suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 1, "cogs": 7, "closingInventory": 8})

	tests := []struct {
		name   string
		path   string
		status int
		err    string
	}{
		{"Month too large", fmt.Sprintf("/api/budgets/%d/monthly-actuals/12", budget.ID), http.StatusBadRequest, "invalid month (must be 0-11)"},
		{"Month negative", fmt.Sprintf("/api/budgets/%d/monthly-actuals/-1", budget.ID), http.StatusBadRequest, "invalid month (must be 0-11)"},
		{"Month not a number", fmt.Sprintf("/api/budgets/%d/monthly-actuals/may", budget.ID), http.StatusBadRequest, "invalid month (must be 0-11)"},
		{"Invalid month, budget not found", "/api/budgets/99/monthly-actuals/12", http.StatusBadRequest, "invalid month (must be 0-11)"},
		{"Budget not found", "/api/budgets/99/monthly-actuals/1", http.StatusNotFound, "there is no budget matching your query"},
		{"Actual not found", fmt.Sprintf("/api/budgets/%d/monthly-actuals/2", budget.ID), http.StatusNotFound, "there is no monthly actual matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
				r := test.Request(t, suite.router, method, tt.path, nil)
				test.AssertHTTPStatus(t, &r, tt.status)
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()), method)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyActualDelete() {
	budget := suite.createTestBudget(map[string]any{})
	suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 5, "cogs": 1, "closingInventory": 1})
	path := fmt.Sprintf("/api/budgets/%d/monthly-actuals/5", budget.ID)

	r := suite.request(http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthlyActualDeleteAll() {
	budget := suite.createTestBudget(map[string]any{})
	other := suite.createTestBudget(map[string]any{})

	suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 0, "cogs": 1, "closingInventory": 1})
	suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 1, "cogs": 1, "closingInventory": 1})
	suite.upsertTestMonthlyActual(other.ID, map[string]any{"month": 0, "cogs": 1, "closingInventory": 1})

	r := suite.request(http.MethodDelete, fmt.Sprintf("/api/budgets/%d/monthly-actuals", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/monthly-actuals", budget.ID), nil)
	suite.Assert().JSONEq("[]", r.Body.String())

	r = suite.request(http.MethodGet, fmt.Sprintf("/api/budgets/%d/monthly-actuals", other.ID), nil)
	var actuals []models.MonthlyActual
	test.DecodeResponse(suite.T(), &r, &actuals)
	suite.Assert().Len(actuals, 1)

	r = suite.request(http.MethodDelete, "/api/budgets/99/monthly-actuals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthlyActualOptions() {
	budget := suite.createTestBudget(map[string]any{})
	suite.upsertTestMonthlyActual(budget.ID, map[string]any{"month": 0, "cogs": 1, "closingInventory": 1})

	r := suite.request(http.MethodOptions, fmt.Sprintf("/api/budgets/%d/monthly-actuals", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, fmt.Sprintf("/api/budgets/%d/monthly-actuals/0", budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}
