package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("72f028e2", "customer")

	assert.Equal(t, "No result for the given customer id=72f028e2", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "NOT_FOUND", err.ErrorCode())
	assert.Equal(t, err.Error(), err.Message())
}

func TestWebServiceError_Message(t *testing.T) {
	err := NewWebServiceError("CUSTOMER_WS_GET_CUSTOMER_ERROR", "CUSTOMER_WS", http.StatusBadGateway,
		"Unexpected response from the server while retrieving customer for customerId=abc, response=oops")

	assert.Equal(t,
		"CUSTOMER_WS_GET_CUSTOMER_ERROR : webService=CUSTOMER_WS, statusCode=502 : "+
			"Unexpected response from the server while retrieving customer for customerId=abc, response=oops",
		err.Error())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "CUSTOMER_WS", err.WebServiceName())
	assert.Equal(t, "webService=CUSTOMER_WS", err.Details())
}

func TestBaseError_Predefined(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrValidationFailed.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthorized.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, ErrInternalError.HTTPCode())
}
