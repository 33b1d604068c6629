package core

import "errors"

var (
	ErrUsernameTaken   error = errors.New("username already taken")
	ErrUnauthenticated error = errors.New("not authenticated")
	ErrUnauthorized    error = errors.New("not authorized")
	ErrNotFound        error = errors.New("not found")
	ErrStorage         error = errors.New("storage failure")
)
