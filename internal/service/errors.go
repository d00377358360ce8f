package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateIdentity  = errors.New("username, email, or phone number already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
