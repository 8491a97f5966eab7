package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrAntiForgeryRejected = errors.New("anti-forgery token rejected")
	ErrProductNotFound     = errors.New("product not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenNotFound       = errors.New("anti-forgery token not found")
)
