package date

import (
	"testing"
	"time"
)

func TestParseFiling(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "index layout with time", in: "10/01/2022 14:03:21", want: New(2022, time.January, 10)},
		{name: "index layout date only", in: "01/06/2023", want: New(2023, time.June, 1)},
		{name: "iso", in: "2023-06-01", want: New(2023, time.June, 1)},
		{name: "iso with time", in: "2023-06-01T09:15:00", want: New(2023, time.June, 1)},
		{name: "padded", in: "  01/06/2023  ", want: New(2023, time.June, 1)},
		{name: "empty is zero", in: "", want: Date{}},
		{name: "garbage", in: "juin 2023", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFiling(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFiling(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseFiling(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	d1 := MustParse("2022-01-10")
	d2 := MustParse("2023-06-01")
	if !d1.Before(d2) || d2.Before(d1) {
		t.Errorf("expected %v before %v", d1, d2)
	}
	if d1.Compare(d2) != -1 || d2.Compare(d1) != 1 || d1.Compare(d1) != 0 {
		t.Errorf("Compare is inconsistent for %v and %v", d1, d2)
	}
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if d1.IsZero() {
		t.Error("parsed date should not report IsZero")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2023, time.June, 1)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2023-06-01"` {
		t.Errorf("MarshalJSON = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
