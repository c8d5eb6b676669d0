package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("limit", "must be positive")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("job", "abc")))
	assert.Equal(t, KindInternal, KindOf(Internal("query", errors.New("boom"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("anything else")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("user", "u1"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestInternal_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("search jobs", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "search jobs")
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields(map[string]string{"page": "too small", "limit": "too large"})

	var ve *ValidationError
	require.ErrorAs(t, error(err), &ve)
	assert.Len(t, ve.Fields, 2)
	assert.Contains(t, err.Error(), "2 invalid field(s)")
}
