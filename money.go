package money

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MinValue and MaxValue bound every monetary value: 12 integer digits and
// 18 fractional digits of headroom. A construction or arithmetic result
// outside the bounds fails with [ErrOutOfRange].
var (
	MaxValue = decimal.RequireFromString("999999999999.999999999999999999")
	MinValue = decimal.RequireFromString("-999999999999.999999999999999999")
)

// divisionScale is the number of fractional digits carried by division
// before the result is rounded to the scale of the currency.
const divisionScale = 28

// Money type represents a monetary amount: an exact decimal value
// denominated in a currency.
//
// Money is immutable and safe for concurrent use by multiple goroutines.
// Every value is quantized to the scale of its currency at construction
// using rounding half to even (banker's rounding).
// The zero value carries the zero [Currency] and is rejected by all
// operations; construct amounts with [New], [NewFromString], or [Parse].
type Money struct {
	curr  Currency
	value decimal.Decimal
}

// newMoney validates a raw decimal value and quantizes it to the scale of
// the currency. The range is checked twice: on the raw input, and again on
// the quantized result, which may round past the boundary.
func newMoney(c Currency, d decimal.Decimal) (Money, error) {
	if c.code == "" {
		return Money{}, fmt.Errorf("%w: zero currency", ErrInvalidCurrency)
	}
	if d.Cmp(MaxValue) > 0 || d.Cmp(MinValue) < 0 {
		return Money{}, fmt.Errorf("%w: %v is outside [%v, %v]", ErrOutOfRange, d, MinValue, MaxValue)
	}
	q := d.RoundBank(int32(c.scale))
	if q.Cmp(MaxValue) > 0 || q.Cmp(MinValue) < 0 {
		return Money{}, fmt.Errorf("%w: %v rounds to %v", ErrOutOfRange, d, q)
	}
	return Money{curr: c, value: q}, nil
}

// New returns an amount with the given value and currency.
// The value is quantized to the scale of the currency using rounding
// half to even.
//
// New returns an error if:
//   - the currency is the zero value;
//   - the value is outside [MinValue, MaxValue], checked before and
//     after quantization.
func New(value decimal.Decimal, curr Currency) (Money, error) {
	m, err := newMoney(curr, value)
	if err != nil {
		return Money{}, fmt.Errorf("creating amount: %w", err)
	}
	return m, nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(value decimal.Decimal, curr Currency) Money {
	m, err := New(value, curr)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", value, curr, err))
	}
	return m
}

// NewFromInt64 returns an amount equal to the given integer.
func NewFromInt64(value int64, curr Currency) (Money, error) {
	return New(decimal.NewFromInt(value), curr)
}

// NewFromMinorUnits converts an integer representing minor units of the
// currency (e.g. cents, pennies, satoshi) to an amount.
// See also method [Money.MinorUnits].
func NewFromMinorUnits(units int64, curr Currency) (Money, error) {
	return New(decimal.New(units, -int32(curr.scale)), curr)
}

// NewFromFloat64 converts a float to an amount.
// The float is converted through its shortest decimal string
// representation, so NewFromFloat64(1000.5, usd) yields exactly
// "1000.50 USD" rather than a binary floating-point artifact.
// See also method [Money.Float64].
//
// NewFromFloat64 returns an error if the float is a special value
// (NaN or Inf).
func NewFromFloat64(value float64, curr Currency) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidValue, value)
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(value, 'f', -1, 64))
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w: %v", ErrInvalidValue, value)
	}
	return New(d, curr)
}

// NewFromString converts a decimal string to an amount.
//
// NewFromString returns [ErrInvalidValue] if the string does not represent
// an exact decimal number.
func NewFromString(value string, curr Currency) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("parsing value %q: %w", value, ErrInvalidValue)
	}
	return New(d, curr)
}

// Parse converts a string in the canonical "<value> <currency>" form,
// for example "1000.50 USD", to an amount.
// Leading and trailing whitespace is ignored.
//
// Parse returns [ErrInvalidFormat] if the input does not split into exactly
// two tokens, if the value token is not an exact decimal number, or if the
// currency token cannot be resolved; the [ErrUnknownCurrency] from the
// registry lookup remains inspectable via [errors.Is].
// Range and quantization rules apply to the parsed value exactly as in [New].
func Parse(s string) (Money, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Money{}, fmt.Errorf("parsing %q: %w: want \"<value> <currency>\"", s, ErrInvalidFormat)
	}
	d, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w: invalid value %q", s, ErrInvalidFormat, fields[0])
	}
	c, err := ParseCurr(fields[1])
	if err != nil {
		return Money{}, fmt.Errorf("parsing %q: %w: %w", s, ErrInvalidFormat, err)
	}
	return New(d, c)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// Decimal returns the quantized decimal value of the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.value.IsNegative()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.value.IsPositive()
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(other Money) bool {
	return m.curr.Equal(other.curr)
}

// Float64 returns the nearest binary floating-point number and reports
// whether the conversion was exact.
// This conversion may lose data, as float64 has a smaller precision than
// the decimal type.
// See also constructor [NewFromFloat64].
func (m Money) Float64() (f float64, exact bool) {
	return m.value.Float64()
}

// MinorUnits returns the amount in minor units of its currency
// (e.g. cents, pennies, satoshi).
// If the result cannot be represented as an int64, then false is returned.
// See also constructor [NewFromMinorUnits].
func (m Money) MinorUnits() (units int64, ok bool) {
	u := m.value.Shift(int32(m.curr.scale)).BigInt()
	if !u.IsInt64() {
		return 0, false
	}
	return u.Int64(), true
}

// Add returns the sum of amounts m and other.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result is outside [MinValue, MaxValue].
func (m Money) Add(other Money) (Money, error) {
	r, err := m.add(other)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, other, err)
	}
	return r, nil
}

func (m Money) add(other Money) (Money, error) {
	if !m.SameCurr(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(m.curr, m.value.Add(other.value))
}

// AddDecimal returns the sum of amount m and the plain number d.
// The currency of the result is the currency of m.
//
// AddDecimal returns an error if the result is outside [MinValue, MaxValue].
func (m Money) AddDecimal(d decimal.Decimal) (Money, error) {
	r, err := newMoney(m.curr, m.value.Add(d))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, d, err)
	}
	return r, nil
}

// Sub returns the difference between amounts m and other.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result is outside [MinValue, MaxValue].
func (m Money) Sub(other Money) (Money, error) {
	r, err := m.sub(other)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, other, err)
	}
	return r, nil
}

func (m Money) sub(other Money) (Money, error) {
	if !m.SameCurr(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(m.curr, m.value.Sub(other.value))
}

// SubDecimal returns the difference between amount m and the plain number d.
// The currency of the result is the currency of m.
//
// SubDecimal returns an error if the result is outside [MinValue, MaxValue].
func (m Money) SubDecimal(d decimal.Decimal) (Money, error) {
	r, err := newMoney(m.curr, m.value.Sub(d))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, d, err)
	}
	return r, nil
}

// SubFromDecimal returns the difference between the plain number d and
// amount m, that is d - m. The currency of the result is the currency of m.
//
// SubFromDecimal returns an error if the result is outside
// [MinValue, MaxValue].
func (m Money) SubFromDecimal(d decimal.Decimal) (Money, error) {
	r, err := newMoney(m.curr, d.Sub(m.value))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", d, m, err)
	}
	return r, nil
}

// Mul returns the product of amount m and factor e.
// Multiplying two amounts is not a meaningful operation and is therefore
// not part of the method set; the factor is always a plain number.
//
// Mul returns an error if the result is outside [MinValue, MaxValue].
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	r, err := newMoney(m.curr, m.value.Mul(e))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return r, nil
}

// Div returns the quotient of amount m and divisor e.
// The quotient is computed to 28 fractional digits and then rounded to the
// scale of the currency using rounding half to even.
// Dividing a plain number by an amount is not a meaningful operation and is
// therefore not part of the method set.
// See also method [Money.Rat].
//
// Div returns an error if:
//   - the divisor is 0;
//   - the result is outside [MinValue, MaxValue].
func (m Money) Div(e decimal.Decimal) (Money, error) {
	r, err := m.div(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) div(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return newMoney(m.curr, m.value.DivRound(e, divisionScale))
}

// Rat returns the dimensionless ratio between amounts m and other, computed
// to 28 fractional digits. This is the one operation whose result is a plain
// decimal number rather than an amount.
// See also method [Money.Div].
//
// Rat returns an error if:
//   - amounts are denominated in different currencies;
//   - the divisor amount is 0.
func (m Money) Rat(other Money) (decimal.Decimal, error) {
	if !m.SameCurr(other) {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, other, ErrCurrencyMismatch)
	}
	if other.value.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, other, ErrDivisionByZero)
	}
	return m.value.DivRound(other.value, divisionScale), nil
}

// Neg returns an amount with the opposite sign.
//
// Neg returns an error only if m is the zero value.
func (m Money) Neg() (Money, error) {
	r, err := newMoney(m.curr, m.value.Neg())
	if err != nil {
		return Money{}, fmt.Errorf("computing [-%v]: %w", m, err)
	}
	return r, nil
}

// Abs returns the absolute value of the amount.
//
// Abs returns an error only if m is the zero value.
func (m Money) Abs() (Money, error) {
	r, err := newMoney(m.curr, m.value.Abs())
	if err != nil {
		return Money{}, fmt.Errorf("computing [abs(%v)]: %w", m, err)
	}
	return r, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the amount cannot be divided equally among the specified number of
// parts, the remainder is distributed, one minor unit at a time, among the
// first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidValue)
	}
	par := decimal.NewFromInt(int64(parts))

	// Integer division in minor units, truncated toward zero.
	units := m.value.Shift(int32(m.curr.scale))
	quo, rem := units.QuoRem(par, 0)
	base := quo.Shift(-int32(m.curr.scale))

	// One minor unit carrying the sign of the remainder.
	ulp := decimal.New(1, -int32(m.curr.scale))
	if rem.IsNegative() {
		ulp = ulp.Neg()
	}
	extra := rem.Abs().IntPart()

	res := make([]Money, parts)
	for i := range res {
		v := base
		if int64(i) < extra {
			v = v.Add(ulp)
		}
		var err error
		res[i], err = newMoney(m.curr, v)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Equal reports whether two amounts are equal: denominated in the same
// currency and carrying the same quantized value.
// Unlike [Money.Cmp], Equal is total: amounts in different currencies are
// simply unequal, so Equal never fails and amounts can be used freely in
// generic containers.
func (m Money) Equal(other Money) bool {
	return m.curr.Equal(other.curr) && m.value.Equal(other.value)
}

// Cmp compares amounts and returns:
//
//	-1 if m < other
//	 0 if m = other
//	+1 if m > other
//
// Cmp returns an error if amounts are denominated in different currencies.
func (m Money) Cmp(other Money) (int, error) {
	if !m.SameCurr(other) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, other, ErrCurrencyMismatch)
	}
	return m.value.Cmp(other.value), nil
}

// Less reports whether m < other.
//
// Less returns an error if amounts are denominated in different currencies.
func (m Money) Less(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual reports whether m <= other.
//
// LessOrEqual returns an error if amounts are denominated in different
// currencies.
func (m Money) LessOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether m > other.
//
// Greater returns an error if amounts are denominated in different
// currencies.
func (m Money) Greater(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual reports whether m >= other.
//
// GreaterOrEqual returns an error if amounts are denominated in different
// currencies.
func (m Money) GreaterOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (m Money) Min(other Money) (Money, error) {
	switch c, err := m.Cmp(other); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return m, nil
	default:
		return other, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (m Money) Max(other Money) (Money, error) {
	switch c, err := m.Cmp(other); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return m, nil
	default:
		return other, nil
	}
}

// Hash returns a hash of the amount derived from its quantized value and
// currency code. Equal amounts always hash equally.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.String())) //nolint:errcheck // fnv.Write never fails
	return h.Sum64()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// "<value> <currency>" form of the amount, for example "1000.50 USD".
// The value is rendered with exactly as many fractional digits as the scale
// of the currency.
// See also constructor [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.value.StringFixed(int32(m.curr.scale)) + " " + m.curr.code
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example         | Description                |
//	| ------ | --------------- | -------------------------- |
//	| %s, %v | 1000.50 USD     | Amount and currency        |
//	| %q     | "1000.50 USD"   | Quoted amount and currency |
//	| %f     | 1000.50         | Amount                     |
//	| %c     | USD             | Currency                   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = m.String()
	case 'q', 'Q':
		s = strconv.Quote(m.String())
	case 'f', 'F':
		s = m.value.StringFixed(int32(m.curr.scale))
	case 'c', 'C':
		s = m.curr.code
	default:
		fmt.Fprintf(state, "%%!%c(money.Money=%s)", verb, m.String())
		return
	}
	writePadded(state, s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical "<value> <currency>" form.
// See also method [Money.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	if m.curr.code == "" {
		return nil, fmt.Errorf("marshaling %T: %w: zero currency", Money{}, ErrInvalidCurrency)
	}
	return []byte(m.String()), nil
}
