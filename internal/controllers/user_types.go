package controllers

import "github.com/budgetplanner/backend/internal/models"

type UserEditable struct {
	Username string `json:"username" example:"morre" binding:"required,max=255"`
}

func (editable UserEditable) model() models.User {
	return models.User{Username: editable.Username}
}

type UserQueryFilter struct {
	Username string `form:"username" json:"username" binding:"required"`
}
