package test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// DecodeError returns the message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}

// Clock returns a function that returns start on the first call and
// advances by step on every following call.
func Clock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		now := next
		next = next.Add(step)
		return now
	}
}
