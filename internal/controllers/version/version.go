package version

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// RegisterRoutes registers the version endpoint reporting version.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Version: version})
	})
	r.OPTIONS("", Options)
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
