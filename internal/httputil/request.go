package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// ParseID parses the path parameter as a resource ID.
func ParseID(c *gin.Context, param string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || parsed == 0 {
		return 0, ErrInvalidID
	}

	return uint(parsed), nil
}

// ParseMonth parses the path parameter as a month, 0 for January
// through 11 for December.
func ParseMonth(c *gin.Context, param string) (int, error) {
	month, err := strconv.Atoi(c.Param(param))
	if err != nil || month < 0 || month > 11 {
		return 0, ErrInvalidMonth
	}

	return month, nil
}

// BindData binds the JSON body of the request to data and validates it.
//
// If data points to a slice, every element is validated on its own and
// invalid ones are reported with their index.
func BindData(c *gin.Context, data any) error {
	if v := reflect.ValueOf(data); v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Slice {
		return bindSlice(c, data, v.Elem())
	}

	return bindError(c, c.ShouldBindJSON(data))
}

func bindSlice(c *gin.Context, data any, v reflect.Value) error {
	if c.Request.Body == nil {
		return ErrRequestBodyEmpty
	}

	if err := json.NewDecoder(c.Request.Body).Decode(data); err != nil {
		return bindError(c, err)
	}

	var msgs []string
	for i := 0; i < v.Len(); i++ {
		err := binding.Validator.ValidateStruct(v.Index(i).Interface())
		if err == nil {
			continue
		}

		msg, ok := ValidationMessage(err)
		if !ok {
			msg = err.Error()
		}
		msgs = append(msgs, fmt.Sprintf("[%d]: %s", i, msg))
	}

	if len(msgs) > 0 {
		return &Error{strings.Join(msgs, "; ")}
	}

	return nil
}

// bindError converts errors of decoding and validating a body.
func bindError(c *gin.Context, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	if msg, ok := ValidationMessage(err); ok {
		return &Error{msg}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &Error{fmt.Sprintf("%s must not be a %s", typeErr.Field, typeErr.Value)}
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// BindQuery binds the query parameters of the request to data.
func BindQuery(c *gin.Context, data any) error {
	err := c.ShouldBindQuery(data)
	if err == nil {
		return nil
	}

	if msg, ok := ValidationMessage(err); ok {
		return &Error{msg}
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidQuery
}

// GetBodyFields returns the names of the fields of resource that are set
// in the JSON body of the request, including fields set to null.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]string, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	var bodyFields []string
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field.Name)
		}
	}

	return bodyFields, nil
}

// ContextURL is the key of the API base URL in the gin context.
const ContextURL = "budgetplanner.baseURL"
