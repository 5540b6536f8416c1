package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid positive integer"`
}

// status returns the appropriate status for an error
func status(err error) int {
	var requestErr *httputil.Error

	switch {
	case errors.As(err, &requestErr),
		errors.Is(err, models.ErrUsernameInUse),
		errors.Is(err, models.ErrUsernameEmpty):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// abort sends the error response for err.
//
// Internal errors are logged, the client only gets a generic message
// with the request ID.
func abort(c *gin.Context, err error) {
	code := status(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		message = fmt.Sprintf("%s, please contact your server administrator. The request id is '%s'", models.ErrGeneral, requestid.Get(c))
	}

	c.AbortWithStatusJSON(code, httpError{Error: message})
}
