package transparence

import "testing"

func TestNameKey(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
	}{
		{name: "accents and hyphens", a: "Yaël Braun-Pivet", b: "yael   braun pivet"},
		{name: "case folding", a: "JEAN DUPONT", b: "Jean Dupont"},
		{name: "cedilla", a: "François", b: "francois"},
		{name: "leading and trailing space", a: "  Marie Curie ", b: "Marie Curie"},
		{name: "double hyphen", a: "Anne--Laure", b: "anne laure"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if NameKey(tc.a) != NameKey(tc.b) {
				t.Errorf("NameKey(%q) = %q, NameKey(%q) = %q; want equal", tc.a, NameKey(tc.a), tc.b, NameKey(tc.b))
			}
		})
	}

	if got, want := NameKey("Yaël Braun-Pivet"), "yael braun pivet"; got != want {
		t.Errorf("NameKey = %q, want %q", got, want)
	}
	if NameKey("Jean Dupont") == NameKey("Jean Dupond") {
		t.Error("distinct names must keep distinct keys")
	}
}
