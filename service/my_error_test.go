package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("backend failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "backend failed", e.Message)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid body", e.Message)
}

func TestNewExternalServiceError(t *testing.T) {
	e := NewExternalServiceError("registration rejected", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrExternalService, e.Code)
	assert.Equal(t, "registration rejected", e.Message)
}

func TestNewExternalServiceError_KeepsInnerMyError(t *testing.T) {
	inner := NewBadParameterError("bad lease", nil)
	e := NewExternalServiceError("registration rejected", inner)
	require.NotNil(t, e)
	assert.Same(t, inner, e)
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToMyError(e)
	assert.Nil(t, got)
}

func TestIsEntityNotFoundError(t *testing.T) {
	e := NewEntityNotFoundError("gone", nil)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestIsExternalServiceError(t *testing.T) {
	e := NewExternalServiceError("backend down", nil)
	assert.True(t, IsExternalServiceError(e))
	assert.False(t, IsInternalServerError(e))
}
