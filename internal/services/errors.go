package services

import "errors"

// Domain-rule violations are reported through these sentinels and recovered
// at the handler boundary. Only storage write failures escalate past them.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("a product with this name already exists")
	ErrDuplicatePhone    = errors.New("this phone number is already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidRating     = errors.New("rating must be between 0.0 and 5.0")
	ErrInvalidPurchase   = errors.New("quantity and price must be positive")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrBadCreds          = errors.New("invalid phone number or password")
	ErrAdminImmutable    = errors.New("admin accounts cannot be deleted")
)
