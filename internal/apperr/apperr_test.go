package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCarriesStatus(t *testing.T) {
	t.Parallel()

	err := New(http.StatusForbidden, "not yours")
	assert.Equal(t, "not yours", err.Error())
	assert.Equal(t, http.StatusForbidden, err.Status)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handling request: %w", NotFound("Course not found"))

	var derr *Error
	require.True(t, errors.As(wrapped, &derr))
	assert.Equal(t, http.StatusNotFound, derr.Status)
	assert.Equal(t, "Course not found", derr.Message)
}

func TestUnauthorizedIsGeneric(t *testing.T) {
	t.Parallel()

	// Unknown account and wrong password must be indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, Unauthorized().Status)
	assert.Equal(t, "Authorization failed", Unauthorized().Message)
}

func TestValidationMessages(t *testing.T) {
	t.Parallel()

	err := NewValidation("A title is required", "A description is required")
	assert.Equal(t, []string{"A title is required", "A description is required"}, err.Messages)
	assert.Equal(t, "A title is required", err.Error())

	empty := NewValidation()
	assert.Equal(t, "validation failed", empty.Error())
}
