package money

import "errors"

var (
	// ErrInvalidCurrency indicates a currency descriptor that does not satisfy
	// the code and scale constraints, including the zero Currency value.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrUnknownCurrency indicates a currency code that is not present
	// in the registry.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInvalidValue indicates an input that cannot be converted to an exact
	// decimal number, such as a malformed numeric string or a NaN float.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat indicates text that does not match the
	// "<value> <currency>" grammar accepted by [Parse].
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange indicates a value outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("value out of range")

	// ErrCurrencyMismatch indicates a binary operation between amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)
