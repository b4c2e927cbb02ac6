package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentError_Error(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "text: text or image is required", ArgError("text", "text or image is required").Error())
}

func TestIsArgError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsArgError(ArgError("email", "invalid")))
	assert.True(t, IsArgError(fmt.Errorf("wrapped: %w", ArgError("email", "invalid"))))
	assert.False(t, IsArgError(ErrNotFound))
	assert.False(t, IsArgError(errors.New("email: invalid")))
	assert.False(t, IsArgError(nil))
}
