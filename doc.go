/*
Package money implements immutable, currency-tagged monetary amounts.

It combines the [decimal] package's exact base-10 arithmetic with a
[Currency] descriptor, so that monetary values never suffer binary
floating-point rounding error and never silently mix currencies.

# Representation

The package consists of two main types: Money and Currency.
A Money value pairs a decimal.Decimal with a Currency.
A Currency is an immutable descriptor carrying a letter code and a scale,
the number of digits after the decimal point used for its minor unit.

Every Money value is quantized to the scale of its currency at construction
time using rounding half to even (banker's rounding), and is bounded by
[MinValue] and [MaxValue]. The bounds leave 12 integer digits and 18
fractional digits of headroom. Construction and every arithmetic operation
re-check both rules, so an out-of-range result is always reported as an
error rather than wrapped or truncated.

The zero value of Money carries the zero Currency, which is not a valid
descriptor; construct amounts with [New], [NewFromString], or [Parse].

# Operations

Amounts support addition, subtraction, multiplication and division by a
decimal factor, the ratio between two amounts, negation, absolute value,
splitting into equal parts, and comparison. Binary operations require both
operands to share a currency and fail with [ErrCurrencyMismatch] otherwise.
[Money.Equal] is the one total operation: it reports false across
currencies instead of failing, so amounts are safe to use as map keys
alongside [Money.Hash].

# Text format

The canonical textual form is "<value> <code>", for example "1000.50 USD".
The value is rendered with exactly as many fractional digits as the
currency's scale. [Parse] accepts the same grammar.

# Errors

All validation failures are reported through sentinel errors such as
[ErrOutOfRange] and [ErrCurrencyMismatch], wrapped with operation context.
Use [errors.Is] to classify a failure.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
