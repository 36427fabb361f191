package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found,
// or that it exists but belongs to a different tenant.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientStock indicates a stock-out quantity exceeds the product's on-hand stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrNothingToSettle indicates a settlement was requested for a party whose
// balance already snaps to zero.
var ErrNothingToSettle = errors.New("no balance to clear")

// ErrAlreadySettled indicates a full-balance settlement already exists for the party.
var ErrAlreadySettled = errors.New("balance already settled")

// ErrStoreUnavailable indicates the backing store failed or timed out.
var ErrStoreUnavailable = errors.New("store unavailable")
