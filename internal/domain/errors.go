package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrUnknownVariant   = errors.New("unknown drink variant")
	ErrDuplicateRequest = errors.New("duplicate client request")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoSnapshot       = errors.New("no analysis snapshot for day")
)
