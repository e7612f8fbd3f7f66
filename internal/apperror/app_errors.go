package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownAction        = errors.New("unknown action")
	ErrInvalidPayload       = errors.New("invalid payload")
)
