// Package controllers contains the HTTP handlers of the API.
//
// Successful responses contain the bare resource or list of resources,
// failed ones an object with the error message, see httpError.
package controllers

import (
	"github.com/budgetplanner/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of the handlers.
type Controller struct {
	Service *service.Service

	// Budgets of this user are listed if the request does not specify one
	DefaultUserID uint
}

func New(s *service.Service, defaultUserID uint) Controller {
	return Controller{
		Service:       s,
		DefaultUserID: defaultUserID,
	}
}

// RegisterRoutes registers the routes of all resources with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterUserRoutes(r.Group("/users"))
}
