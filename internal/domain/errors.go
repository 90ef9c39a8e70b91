package domain

import "errors"

// Domain errors
var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrInvalidAmount          = errors.New("amount must be non-negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrCategoryRequired       = errors.New("category is required")
	ErrCategoryTypeMismatch   = errors.New("category type does not match transaction type")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrNotesTooLong           = errors.New("notes exceed maximum length")
	ErrInvalidColor           = errors.New("color must be a #RRGGBB hex value")
	ErrInvalidPeriod          = errors.New("invalid period")
	ErrUnknownCurrency        = errors.New("unknown currency code")
	ErrMalformedData          = errors.New("malformed stored data")
)
