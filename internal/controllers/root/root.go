package root

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"` // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the version of the backend
	Budgets string `json:"budgets" example:"https://example.com/api/budgets"` // List endpoint for budgets
	Users   string `json:"users" example:"https://example.com/api/users"`     // Endpoint for users
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// Get lists the endpoints of the API.
func Get(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Budgets: url + "/budgets",
			Users:   url + "/users",
		},
	})
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
