package errors

import (
	"net/http"
	"testing"

	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAddressNotOwned.WrapMessage("address 3 belongs to person 9")

	assert.ErrorIs(t, err, ErrAddressNotOwned)
	assert.NotErrorIs(t, err, ErrAddressNotFound)

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "ADDRESS_NOT_OWNED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "address 3 belongs to person 9")
}

func TestBaseError_WithDetailsMatchesByCode(t *testing.T) {
	err := ErrPersonNotFound.WithDetails("person 12")

	assert.ErrorIs(t, err, ErrPersonNotFound)
	assert.Equal(t, "person 12", err.Details())
	assert.Equal(t, "", ErrPersonNotFound.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create person")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create person", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
