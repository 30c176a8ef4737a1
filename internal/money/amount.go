// Package money holds the decimal amount used for prices and totals.
package money

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent accepted from JSON, so a short
// literal such as 1e100000000 never expands into millions of digits.
const MaxExponent = 30

var numberType = reflect.TypeOf(float64(0))

// Amount is a currency-agnostic decimal that travels as a bare JSON number.
// An amount read from JSON is written back with the caller's own literal.
type Amount struct {
	decimal.Decimal
	raw string
}

func New(units int64) Amount { return Amount{Decimal: decimal.NewFromInt(units)} }

// Parse reads a decimal literal such as "129" or "12.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

// Times returns the line total for qty units.
func (a Amount) Times(qty int) Amount {
	return Amount{Decimal: a.Decimal.Mul(decimal.NewFromInt(int64(qty)))}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.raw != "" {
		return []byte(a.raw), nil
	}
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if kind := jsonKind(b); kind != "number" {
		return &json.UnmarshalTypeError{Value: kind, Type: numberType}
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return &json.UnmarshalTypeError{Value: "number " + clip(b), Type: numberType}
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return &json.UnmarshalTypeError{Value: "out-of-range number " + clip(b), Type: numberType}
	}
	a.Decimal = d
	a.raw = string(b)
	return nil
}

func clip(b []byte) string {
	const max = 32
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch c := b[0]; {
	case c == '"':
		return "string"
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == 't' || c == 'f':
		return "bool"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	}
	return "unknown"
}
