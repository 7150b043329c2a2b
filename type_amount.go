package transparence

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a declared monetary value, or its absence. Declarations
// routinely omit valuations, and an omitted value is not the same thing as a
// zero one; Amount keeps that distinction explicit instead of overloading a
// float.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// AmountOf returns a present Amount for the given value. A zero value yields
// the absent Amount, consistent with ParseAmount.
func AmountOf(v float64) Amount {
	d := decimal.NewFromFloat(v)
	return Amount{value: d, valid: !d.IsZero()}
}

// ParseAmount converts free-form monetary text into an Amount.
//
// It strips spacing (including non-breaking and narrow no-break spaces),
// currency symbols and codes, and any other non-numeric characters, then
// resolves the separator convention: when both "," and "." occur the
// rightmost one is the decimal separator; a lone comma is a decimal comma.
// So "12 500,00 €", "12500.00" and "12,500.00" all parse to the same value.
//
// Empty or unparseable text yields the absent Amount. A value of exactly
// zero also yields the absent Amount: in the source documents a declared
// zero is indistinguishable from "not provided", and the engine must not
// claim a zero holding it cannot substantiate.
func ParseAmount(s string) Amount {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '-', r == ',', r == '.':
			b.WriteRune(r)
		}
	}
	t := b.String()
	if t == "" || t == "-" {
		return Amount{}
	}

	lastComma := strings.LastIndexByte(t, ',')
	lastDot := strings.LastIndexByte(t, '.')
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// decimal comma, dots are grouping
			t = strings.ReplaceAll(t, ".", "")
			t = strings.ReplaceAll(t, ",", ".")
		} else {
			// decimal dot, commas are grouping
			t = strings.ReplaceAll(t, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(t, ",") == 1 {
			t = strings.Replace(t, ",", ".", 1)
		} else {
			t = strings.ReplaceAll(t, ",", "")
		}
	}

	d, err := decimal.NewFromString(t)
	if err != nil || d.IsZero() {
		return Amount{}
	}
	return Amount{value: d, valid: true}
}

// IsAbsent reports whether no value was provided.
func (a Amount) IsAbsent() bool { return !a.valid }

// Float64 returns the value and whether it is present.
func (a Amount) Float64() (float64, bool) { return a.value.InexactFloat64(), a.valid }

// Decimal returns the exact value; the absent Amount yields decimal zero,
// so Amounts can be accumulated directly.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Add returns the sum of both amounts, absent operands counting as zero.
// The result is present if either operand is.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), valid: a.valid || b.valid}
}

// Equal reports whether both amounts are equal, including their presence.
func (a Amount) Equal(b Amount) bool {
	return a.valid == b.valid && a.value.Equal(b.value)
}

// String returns the plain decimal representation, or "" when absent.
func (a Amount) String() string {
	if !a.valid {
		return ""
	}
	return a.value.String()
}

// MarshalJSON encodes a present Amount as a JSON number and an absent one as
// null, so output field names and shapes stay stable regardless of which
// source variant provided the value.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.value.InexactFloat64())
}

// UnmarshalJSON decodes null (or a zero number) as absent.
func (a *Amount) UnmarshalJSON(bytes []byte) error {
	if string(bytes) == "null" {
		*a = Amount{}
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(bytes, &d); err != nil {
		return err
	}
	*a = Amount{value: d, valid: !d.IsZero()}
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
