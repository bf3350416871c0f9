package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrCartLineNotFound
	ErrCartQuantityNegative
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "The Email has already been taken.",
	ErrInvalidPassword:      MsgLoginFailed,
	ErrCartLineNotFound:     MsgCartNotInCart,
	ErrCartQuantityNegative: MsgCartBelowZero,
}

// ErrorTypeHTTPCode picks the status; the body is always the error envelope.
var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusUnauthorized,
	ErrCartLineNotFound:     http.StatusBadRequest,
	ErrCartQuantityNegative: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrCartLineNotFound:     "0101",
	ErrCartQuantityNegative: "0102",
}
