//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertRequestID checks the id stamped by the logging middleware.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Regexp(t, `^[0-9]{14}-[0-9a-f]{8}$`, w.Header().Get("X-Request-ID"))
}
