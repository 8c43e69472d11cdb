package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("no access token found")
	ErrFetchFailed        = errors.New("error fetching orders")
	ErrUnknownColumn      = errors.New("unknown searchable column")
	ErrInvalidSelection   = errors.New("invalid row selection")
)
