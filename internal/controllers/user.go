package controllers

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsUserList)
		r.GET("", co.GetUserByUsername)
		r.POST("", co.CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", co.OptionsUserDetail)
		r.GET("/:id", co.GetUser)
	}
}

func (co Controller) OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func (co Controller) OptionsUserDetail(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abort(c, err)
		return
	}

	if _, err := co.Service.GetUser(c.Request.Context(), id); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// GetUserByUsername returns the user with the username from the query
// string. Users are only looked up by name, there is no list of all users.
func (co Controller) GetUserByUsername(c *gin.Context) {
	var filter UserQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		abort(c, err)
		return
	}

	user, err := co.Service.GetUserByUsername(c.Request.Context(), filter.Username)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (co Controller) CreateUser(c *gin.Context) {
	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	user, err := co.Service.CreateUser(c.Request.Context(), editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (co Controller) GetUser(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		abort(c, err)
		return
	}

	user, err := co.Service.GetUser(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
