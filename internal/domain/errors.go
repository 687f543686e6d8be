package domain

import "errors"

// Property validation errors
var (
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingLocation    = errors.New("location is required")
	ErrMissingPrice       = errors.New("price is required")
	ErrMissingDescription = errors.New("description is required")
	ErrInvalidImageURL    = errors.New("image must be an http(s) URL ending in an image extension")
)
