package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	notFound := NotFound("order not found")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, "order not found", notFound.Message)
	assert.ErrorIs(t, notFound, ErrNotFound)

	badReq := BadRequest("rating out of range")
	assert.Equal(t, http.StatusBadRequest, badReq.Code)
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	unauth := Unauthorized("invalid credentials")
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)
	assert.ErrorIs(t, unauth, ErrUnauthorized)

	forbidden := Forbidden("vendors only")
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.ErrorIs(t, forbidden, ErrForbidden)

	cause := stderrors.New("db down")
	internal := InternalError(cause)
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.ErrorIs(t, internal, cause)
	assert.Equal(t, "db down", internal.Error())
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	withCause := NewAppError(http.StatusConflict, "duplicate", ErrAlreadyExists)
	assert.Equal(t, ErrAlreadyExists.Error(), withCause.Error())
	assert.Equal(t, ErrAlreadyExists, withCause.Unwrap())

	noCause := &AppError{Code: http.StatusBadRequest, Message: "just a message"}
	assert.Equal(t, "just a message", noCause.Error())
	assert.Nil(t, noCause.Unwrap())
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	assert.True(t, stderrors.As(NotFound("x"), &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	assert.False(t, stderrors.As(stderrors.New("plain"), &appErr))
}
