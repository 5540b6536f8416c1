package service_test

import (
	"github.com/budgetplanner/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserCreateAndGet() {
	user, err := suite.service.CreateUser(suite.ctx, models.User{Username: "  morre "})
	suite.Require().Nil(err)
	suite.Assert().Equal(uint(1), user.ID)
	suite.Assert().Equal("morre", user.Username)

	got, err := suite.service.GetUser(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(user, got)

	byName, err := suite.service.GetUserByUsername(suite.ctx, "morre")
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, byName.ID)
}

func (suite *TestSuiteStandard) TestUserUsernameUnique() {
	_, err := suite.service.CreateUser(suite.ctx, models.User{Username: "morre"})
	suite.Require().Nil(err)

	_, err = suite.service.CreateUser(suite.ctx, models.User{Username: "morre"})
	suite.Assert().ErrorIs(err, models.ErrUsernameInUse)
}

func (suite *TestSuiteStandard) TestUserUsernameEmpty() {
	_, err := suite.service.CreateUser(suite.ctx, models.User{Username: "   "})
	suite.Assert().ErrorIs(err, models.ErrUsernameEmpty)
}

func (suite *TestSuiteStandard) TestUserNotFound() {
	_, err := suite.service.GetUser(suite.ctx, 17)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().EqualError(err, "there is no user matching your query")

	_, err = suite.service.GetUserByUsername(suite.ctx, "nobody")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
