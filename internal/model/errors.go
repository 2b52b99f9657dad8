package model

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmptyField = errors.New("required field is empty")
)
