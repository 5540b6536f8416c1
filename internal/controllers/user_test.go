package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/test"
)

func (suite *TestSuiteStandard) TestUserCreateAndGet() {
	r := suite.request(http.MethodPost, "/api/users", map[string]any{"username": "morre"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var user models.User
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal(uint(1), user.ID)

	r = suite.request(http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, "/api/users?username=morre", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var byName models.User
	test.DecodeResponse(suite.T(), &r, &byName)
	suite.Assert().Equal(user, byName)
}

func (suite *TestSuiteStandard) TestUserFails() {
	r := suite.request(http.MethodPost, "/api/users", map[string]any{"username": "morre"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodPost, "/api/users", map[string]any{"username": "morre"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("this username is already in use", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/users", map[string]any{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("username is required", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPost, "/api/users", map[string]any{"username": "  "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the username must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodGet, "/api/users", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("username is required", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodGet, "/api/users?username=nobody", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "/api/users/42", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no user matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUserOptions() {
	r := suite.request(http.MethodOptions, "/api/users", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/api/users/1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
