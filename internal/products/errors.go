package products

import "github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/platform/httpx"

var (
	// ErrNotFound is returned when the target id does not exist.
	ErrNotFound = &httpx.NotFoundError{Message: "Product not found"}
	// ErrMissingFields is returned when create or update lacks a required field.
	ErrMissingFields = &httpx.ValidationError{Message: "Missing required fields"}
	// ErrQuantityRequired is returned when the quantity patch has no quantity.
	ErrQuantityRequired = &httpx.ValidationError{Message: "Quantity is required"}
	// ErrNegativeQuantity is returned for quantities below zero.
	ErrNegativeQuantity = &httpx.ValidationError{Message: "Quantity must not be negative"}
	// ErrNegativePrice is returned for prices below zero.
	ErrNegativePrice = &httpx.ValidationError{Message: "Price must not be negative"}
	// ErrInvalidBody is returned when the request body is not valid JSON for the target shape.
	ErrInvalidBody = &httpx.ValidationError{Message: "Invalid request body"}
)
