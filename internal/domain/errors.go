package domain

import "errors"

// Domain errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrFieldNotFound      = errors.New("field not found")
	ErrUnknownCrop        = errors.New("unknown crop type")
	ErrPredictionNotFound = errors.New("prediction not found")
)
