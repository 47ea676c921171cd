package money

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Currency type represents a currency in the global financial system.
// It is an immutable descriptor carrying a letter code and a scale, the
// number of digits after the decimal point required for representing the
// minor unit of the currency.
//
// The zero value is not a valid currency; obtain descriptors from
// [NewCurrency], [ParseCurr], or the built-in registry.
// Currency values are safe for concurrent use by multiple goroutines.
type Currency struct {
	code  string
	scale int
}

// MaxCurrencyScale is the largest scale a currency may declare.
// It equals the fractional headroom of [MaxValue].
const MaxCurrencyScale = 18

// NewCurrency returns a currency descriptor with the given code and scale.
//
// NewCurrency returns an error if:
//   - the code is not 2 to 6 ASCII letters;
//   - the scale is negative or greater than [MaxCurrencyScale].
//
// The code is normalized to upper case.
func NewCurrency(code string, scale int) (Currency, error) {
	code = strings.ToUpper(code)
	if len(code) < 2 || len(code) > 6 {
		return Currency{}, fmt.Errorf("%w: code %q must be 2 to 6 letters", ErrInvalidCurrency, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return Currency{}, fmt.Errorf("%w: code %q must contain only letters", ErrInvalidCurrency, code)
		}
	}
	if scale < 0 || scale > MaxCurrencyScale {
		return Currency{}, fmt.Errorf("%w: scale %d must be between 0 and %d", ErrInvalidCurrency, scale, MaxCurrencyScale)
	}
	return Currency{code: code, scale: scale}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the descriptor cannot
// be constructed. It simplifies safe initialization of global variables
// holding currencies.
func MustNewCurrency(code string, scale int) Currency {
	c, err := NewCurrency(code, scale)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %v) failed: %v", code, scale, err))
	}
	return c
}

// Scales per ISO 4217, plus a few non-ISO codes common in trading systems.
var builtinCurrencies = []Currency{
	// Scale 0
	{"BIF", 0}, {"CLP", 0}, {"DJF", 0}, {"GNF", 0}, {"ISK", 0},
	{"JPY", 0}, {"KMF", 0}, {"KRW", 0}, {"PYG", 0}, {"RWF", 0},
	{"UGX", 0}, {"VND", 0}, {"VUV", 0}, {"XAF", 0}, {"XOF", 0},
	{"XPF", 0},
	// Scale 2
	{"AED", 2}, {"ARS", 2}, {"AUD", 2}, {"BGN", 2}, {"BRL", 2},
	{"CAD", 2}, {"CHF", 2}, {"CNY", 2}, {"COP", 2}, {"CZK", 2},
	{"DKK", 2}, {"EGP", 2}, {"EUR", 2}, {"GBP", 2}, {"HKD", 2},
	{"HUF", 2}, {"IDR", 2}, {"ILS", 2}, {"INR", 2}, {"KES", 2},
	{"MXN", 2}, {"MYR", 2}, {"NGN", 2}, {"NOK", 2}, {"NZD", 2},
	{"PEN", 2}, {"PHP", 2}, {"PLN", 2}, {"QAR", 2}, {"RON", 2},
	{"RUB", 2}, {"SAR", 2}, {"SEK", 2}, {"SGD", 2}, {"THB", 2},
	{"TRY", 2}, {"TWD", 2}, {"USD", 2}, {"ZAR", 2},
	// Scale 3
	{"BHD", 3}, {"IQD", 3}, {"JOD", 3}, {"KWD", 3}, {"LYD", 3},
	{"OMR", 3}, {"TND", 3},
	// Non-ISO
	{"BTC", 8}, {"ETH", 18},
}

var (
	currMu     sync.RWMutex
	currLookup = make(map[string]Currency, len(builtinCurrencies))
)

func init() {
	for _, c := range builtinCurrencies {
		currLookup[c.code] = c
	}
}

// ParseCurr resolves a code to a currency descriptor from the registry.
// The lookup is case-insensitive:
//
//	USD
//	usd
//
// ParseCurr returns [ErrUnknownCurrency] if the code is not registered.
func ParseCurr(code string) (Currency, error) {
	currMu.RLock()
	c, ok := currLookup[strings.ToUpper(code)]
	currMu.RUnlock()
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the code cannot be resolved.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// RegisterCurr adds a currency descriptor to the registry, replacing any
// descriptor previously registered under the same code.
// It allows applications to define currencies beyond the built-in set,
// such as exchange-specific or test instruments.
//
// RegisterCurr returns [ErrInvalidCurrency] if the descriptor is the zero value.
func RegisterCurr(c Currency) error {
	if c.code == "" {
		return fmt.Errorf("%w: zero currency", ErrInvalidCurrency)
	}
	currMu.Lock()
	currLookup[c.code] = c
	currMu.Unlock()
	return nil
}

// Code returns the letter code of the currency, for example "USD".
func (c Currency) Code() string {
	return c.code
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency.
// For example, the US Dollar represents its minor unit, 1 cent, as 0.01
// dollars and therefore has a scale of 2, whereas the Japanese Yen has no
// minor unit and a scale of 0.
func (c Currency) Scale() int {
	return c.scale
}

// Equal reports whether two currencies are the same.
// Currencies are identified by code; the scale does not participate.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.code
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V', 'c', 'C':
		s = c.code
	case 'q', 'Q':
		s = strconv.Quote(c.code)
	default:
		fmt.Fprintf(state, "%%!%c(money.Currency=%s)", verb, c.code)
		return
	}
	writePadded(state, s)
}

// writePadded writes s to state honoring the width and '-' flag.
func writePadded(state fmt.State, s string) {
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	//nolint:errcheck
	io.WriteString(state, s)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the letter code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted letter code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.code)+2)
	text = append(text, '"')
	text = append(text, c.code...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T", Currency{}, NullCurrency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.code, nil
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = Currency{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = Currency{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
