// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>

package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/fixedvec/api"
)

func TestErrorIsMapsCodesToSentinels(t *testing.T) {
	err := api.NewError(api.ErrCodeNotEnoughSpace, "full", map[string]any{"cap": 4})
	assert.True(t, errors.Is(err, api.ErrNotEnoughSpace))
	assert.False(t, errors.Is(err, api.ErrIndexOutOfRange))

	oor := api.NewError(api.ErrCodeIndexOutOfRange, "bad index", nil)
	assert.True(t, errors.Is(oor, api.ErrIndexOutOfRange))

	inv := api.NewError(api.ErrCodeInvalidArgument, "bad argument", nil)
	assert.True(t, errors.Is(inv, api.ErrInvalidArgument))
}

func TestErrorMessageIncludesContext(t *testing.T) {
	err := api.NewError(api.ErrCodeNotEnoughSpace, "full", map[string]any{"cap": 4})
	assert.Contains(t, err.Error(), "full")
	assert.Contains(t, err.Error(), "cap")

	bare := api.NewError(api.ErrCodeOK, "plain", nil)
	assert.Equal(t, "plain", bare.Error())
}

func TestErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("push: %w",
		api.NewError(api.ErrCodeNotEnoughSpace, "full", nil))
	assert.True(t, errors.Is(err, api.ErrNotEnoughSpace))
}
