package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when a product does not exist in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyInput is returned when receipt text or a transcript is blank
	ErrEmptyInput = errors.New("input text is empty")

	// ErrInvalidPaymentMode is returned for payment modes other than cash/upi
	ErrInvalidPaymentMode = errors.New("invalid payment mode")

	// ErrStorageFailure is returned when a repository operation fails
	ErrStorageFailure = errors.New("storage operation failed")
)
