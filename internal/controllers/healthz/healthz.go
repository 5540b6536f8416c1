package healthz

import (
	"context"
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns a handler reporting the health of the backend. It responds
// with 204 if healthy and 500 with an error if not.
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := p.Ping(c.Request.Context())
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "the storage backend is not available"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
