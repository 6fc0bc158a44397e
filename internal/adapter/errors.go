package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrEmptyAddress = errors.New("empty address")
	ErrInvalidURL   = errors.New("address must include host and scheme")
)
