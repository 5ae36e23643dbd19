package domain

import "errors"

var (
	// ErrManufacturerNotSupported is returned when a manufacturer is not in the registry
	ErrManufacturerNotSupported = errors.New("manufacturer not supported")

	// ErrProductNotFound is returned when a product is not registered for a known manufacturer
	ErrProductNotFound = errors.New("product not found")

	// ErrFetchFailed is returned when all fetch attempts against a manufacturer page failed
	ErrFetchFailed = errors.New("failed to fetch product page")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
