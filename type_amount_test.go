package transparence

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		want   float64
		absent bool
	}{
		{name: "french grouping and euro sign", in: "12 500,00 €", want: 12500},
		{name: "non-breaking spaces", in: "12 500,00", want: 12500},
		{name: "narrow no-break space", in: "1 157,30", want: 1157.30},
		{name: "us convention", in: "1,157.30", want: 1157.30},
		{name: "french convention", in: "1 157,30", want: 1157.30},
		{name: "dot grouping comma decimal", in: "1.157,30", want: 1157.30},
		{name: "currency code", in: "2500 EUR", want: 2500},
		{name: "plain integer", in: "300000", want: 300000},
		{name: "negative", in: "-1200,50", want: -1200.50},
		{name: "multiple grouping commas", in: "1,250,000", want: 1250000},
		{name: "empty", in: "", absent: true},
		{name: "spaces only", in: "   ", absent: true},
		{name: "text only", in: "non renseigné", absent: true},
		{name: "zero is absent", in: "0", absent: true},
		{name: "zero with decimals is absent", in: "0,00 €", absent: true},
		{name: "lone dash", in: "-", absent: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmount(tc.in)
			if got.IsAbsent() != tc.absent {
				t.Fatalf("ParseAmount(%q).IsAbsent() = %v, want %v", tc.in, got.IsAbsent(), tc.absent)
			}
			if tc.absent {
				return
			}
			if v, _ := got.Float64(); v != tc.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, v, tc.want)
			}
		})
	}
}

func TestAmountAdd(t *testing.T) {
	a := ParseAmount("1000,50")
	b := ParseAmount("")
	sum := a.Add(b)
	if sum.IsAbsent() {
		t.Fatal("present + absent should stay present")
	}
	if v, _ := sum.Float64(); v != 1000.50 {
		t.Errorf("sum = %v, want 1000.50", v)
	}
	if got := b.Add(Amount{}); !got.IsAbsent() {
		t.Error("absent + absent should stay absent")
	}
}

func TestAmountJSON(t *testing.T) {
	testCases := []struct {
		in   Amount
		want string
	}{
		{in: ParseAmount("250000"), want: "250000"},
		{in: ParseAmount("1157,30"), want: "1157.3"},
		{in: Amount{}, want: "null"},
	}
	for _, tc := range testCases {
		b, err := tc.in.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != tc.want {
			t.Errorf("MarshalJSON(%v) = %s, want %s", tc.in, b, tc.want)
		}
		var back Amount
		if err := back.UnmarshalJSON(b); err != nil {
			t.Fatal(err)
		}
		if !back.Equal(tc.in) {
			t.Errorf("round trip of %v = %v", tc.in, back)
		}
	}
}
