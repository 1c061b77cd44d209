package engine

import "errors"

var (
	ErrNoBoard        = errors.New("no board loaded")
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
)
