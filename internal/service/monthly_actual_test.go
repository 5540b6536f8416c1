package service_test

import (
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/store"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthlyActualUpsert() {
	budget := suite.createTestBudget(models.Budget{UserID: ref(1)})
	suite.Require().Equal(uint(1), budget.ID)

	first := suite.upsertTestMonthlyActual(models.MonthlyActual{
		BudgetID:         &budget.ID,
		Month:            3,
		Cogs:             decimal.NewFromInt(100),
		ClosingInventory: decimal.NewFromInt(50),
	})
	suite.Assert().Equal(uint(1), first.ID)

	second := suite.upsertTestMonthlyActual(models.MonthlyActual{
		BudgetID:         &budget.ID,
		Month:            3,
		Cogs:             decimal.NewFromInt(120),
		ClosingInventory: decimal.NewFromInt(40),
	})
	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().True(second.Cogs.Equal(decimal.NewFromInt(120)))
	suite.Assert().True(second.ClosingInventory.Equal(decimal.NewFromInt(40)))
	suite.Assert().True(first.RecordedAt.Equal(second.RecordedAt), "RecordedAt changed from %s to %s", first.RecordedAt, second.RecordedAt)

	actuals, err := suite.service.ListMonthlyActuals(suite.ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Require().Len(actuals, 1)
	suite.Assert().True(actuals[0].Cogs.Equal(decimal.NewFromInt(120)))
}

func (suite *TestSuiteStandard) TestMonthlyActualUpsertDistinctKeys() {
	a := suite.createTestBudget(models.Budget{})
	b := suite.createTestBudget(models.Budget{})

	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &a.ID, Month: 3})
	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &a.ID, Month: 4})
	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &b.ID, Month: 3})

	actuals, err := suite.service.ListMonthlyActuals(suite.ctx, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(actuals, 2)

	actuals, err = suite.service.ListMonthlyActuals(suite.ctx, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(actuals, 1)
}

func (suite *TestSuiteStandard) TestMonthlyActualFind() {
	budget := suite.createTestBudget(models.Budget{})
	actual := suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &budget.ID, Month: 11})

	found, err := suite.service.FindMonthlyActual(suite.ctx, budget.ID, 11)
	suite.Require().Nil(err)
	suite.Assert().Equal(actual.ID, found.ID)

	_, err = suite.service.FindMonthlyActual(suite.ctx, budget.ID, 10)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().EqualError(err, "there is no monthly actual matching your query")
}

func (suite *TestSuiteStandard) TestMonthlyActualListSorted() {
	budget := suite.createTestBudget(models.Budget{})
	for _, month := range []int{9, 2, 6} {
		suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &budget.ID, Month: month})
	}

	actuals, err := suite.service.ListMonthlyActuals(suite.ctx, budget.ID)
	suite.Require().Nil(err)
	suite.Require().Len(actuals, 3)
	suite.Assert().Equal(2, actuals[0].Month)
	suite.Assert().Equal(6, actuals[1].Month)
	suite.Assert().Equal(9, actuals[2].Month)
}

func (suite *TestSuiteStandard) TestMonthlyActualDelete() {
	budget := suite.createTestBudget(models.Budget{})
	actual := suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &budget.ID, Month: 1})

	ok, err := suite.service.DeleteMonthlyActual(suite.ctx, actual.ID)
	suite.Require().Nil(err)
	suite.Assert().True(ok)

	ok, err = suite.service.DeleteMonthlyActual(suite.ctx, actual.ID)
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestMonthlyActualDeleteForBudget() {
	a := suite.createTestBudget(models.Budget{})
	b := suite.createTestBudget(models.Budget{})

	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &a.ID, Month: 0})
	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &a.ID, Month: 1})
	suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: &b.ID, Month: 0})

	ok, err := suite.service.DeleteMonthlyActualsForBudget(suite.ctx, a.ID)
	suite.Require().Nil(err)
	suite.Assert().True(ok)

	actuals, err := suite.service.ListMonthlyActuals(suite.ctx, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(actuals, 0)

	actuals, err = suite.service.ListMonthlyActuals(suite.ctx, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(actuals, 1)
}

func (suite *TestSuiteStandard) TestMonthlyActualUpsertWithoutBudget() {
	for _, budgetID := range []*uint{ref(0), nil} {
		first := suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: budgetID, Month: 3, Cogs: decimal.NewFromInt(1)})
		second := suite.upsertTestMonthlyActual(models.MonthlyActual{BudgetID: budgetID, Month: 3, Cogs: decimal.NewFromInt(2)})

		suite.Assert().Nil(first.BudgetID)
		suite.Assert().Equal(first.ID, second.ID, "Upserting twice without a budget must update the actual")
		suite.Assert().True(second.Cogs.Equal(decimal.NewFromInt(2)))
	}

	actuals, err := suite.stores.MonthlyActuals.List(suite.ctx, store.All[models.MonthlyActual]())
	suite.Require().Nil(err)
	suite.Assert().Len(actuals, 1)
}
