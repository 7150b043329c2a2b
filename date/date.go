// Package date provides a day-granularity Date used for declaration filing
// dates. Source documents carry dates in several layouts depending on the
// schema version, so parsing is deliberately permissive.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// filingLayouts are the layouts observed in declaration documents and in the
// open-data index, most frequent first.
var filingLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-1-2",
}

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare compares d and x like time.Time.Compare: -1 if d is before x,
// 0 if equal, +1 if after.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date in its standard format. The zero date is "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Parse parses a Date from an ISO-8601 string. It is lenient and accepts
// formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse("2006-1-2", str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseFiling parses a filing date in any of the layouts observed in
// declaration documents ("31/12/2023 10:30:00", "31/12/2023", "2023-12-31").
// An empty string parses to the zero Date without error: many documents omit
// the filing date and that absence is meaningful to the selection rule.
func ParseFiling(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, nil
	}
	for _, layout := range filingLayouts {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized filing date %q", str)
}

// UnmarshalJSON implements json.Unmarshaler, accepting any filing layout.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseFiling(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON implements json.Marshaler using the ISO-8601 format.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
