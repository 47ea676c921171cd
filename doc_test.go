package money_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finvalues/money"
	"github.com/shopspring/decimal"
)

func ExampleParse() {
	m, err := money.Parse("1000.50 USD")
	fmt.Println(m, err)
	// Output: 1000.50 USD <nil>
}

func ExampleNew() {
	usd := money.MustParseCurr("USD")
	m, _ := money.New(decimal.RequireFromString("1.005"), usd)
	fmt.Println(m)
	// Output: 1.00 USD
}

func ExampleNewFromFloat64() {
	usd := money.MustParseCurr("USD")
	m, _ := money.NewFromFloat64(1000.5, usd)
	fmt.Println(m)
	// Output: 1000.50 USD
}

func ExampleMoney_Add() {
	a := money.MustParse("15.30 USD")
	b := money.MustParse("4.70 USD")
	sum, _ := a.Add(b)
	fmt.Println(sum)
	// Output: 20.00 USD
}

func ExampleMoney_Add_currencyMismatch() {
	a := money.MustParse("15.30 USD")
	b := money.MustParse("4.70 EUR")
	_, err := a.Add(b)
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output: true
}

func ExampleMoney_Mul() {
	m := money.MustParse("5.75 USD")
	r, _ := m.Mul(decimal.RequireFromString("1.5"))
	fmt.Println(r)
	// Output: 8.62 USD
}

func ExampleMoney_Rat() {
	a := money.MustParse("10.00 USD")
	b := money.MustParse("2.00 USD")
	ratio, _ := a.Rat(b)
	fmt.Println(ratio)
	// Output: 5
}

func ExampleMoney_Split() {
	m := money.MustParse("10.00 USD")
	parts, _ := m.Split(3)
	fmt.Println(parts)
	// Output: [3.34 USD 3.33 USD 3.33 USD]
}

func ExampleMoney_Cmp() {
	a := money.MustParse("9.99 USD")
	b := money.MustParse("10.00 USD")
	c, _ := a.Cmp(b)
	fmt.Println(c)
	// Output: -1
}

func ExampleMoney_MinorUnits() {
	m := money.MustParse("10.50 USD")
	units, ok := m.MinorUnits()
	fmt.Println(units, ok)
	// Output: 1050 true
}

func ExampleMoney_MarshalText() {
	type payment struct {
		Amount money.Money `json:"amount"`
	}
	data, _ := json.Marshal(payment{Amount: money.MustParse("99.95 EUR")})
	fmt.Println(string(data))
	// Output: {"amount":"99.95 EUR"}
}

func ExampleParseCurr() {
	c, _ := money.ParseCurr("OMR")
	fmt.Println(c.Code(), c.Scale())
	// Output: OMR 3
}

func ExampleNewCurrency() {
	c, _ := money.NewCurrency("XAU", 6)
	fmt.Println(c.Code(), c.Scale())
	// Output: XAU 6
}
