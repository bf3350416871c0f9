package errors

import "github.com/mnmsi/Lara-api/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// WithMessage keeps the error type but replaces the user facing message.
func (c CustomError) WithMessage(msg string) CustomError {
	c.message = msg
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// NewCustomError is SetCustomError with a message override.
func NewCustomError(errorType constant.ErrorType, msg string) CustomError {
	return CustomError{
		errType: errorType,
		message: msg,
	}
}
