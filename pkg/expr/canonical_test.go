package expr

import "testing"

func TestCanonicalKeyEquivalence(t *testing.T) {
	equal := []struct {
		name string
		a, b string
	}{
		{"commutative addition", "2 + 3", "3 + 2"},
		{"commutative multiplication", "2 * 3", "3 * 2"},
		{"mixed term order", "1 + 2 * 3", "1 + 3 * 2"},
		{"term reorder", "1 + 2 * 3", "2 * 3 + 1"},
		{"negative term reorder", "10 - 2 + 3", "10 + 3 - 2"},
		{"parenthesized product", "(2 * 3) + 1", "1 + 3 * 2"},
		{"factor sort inside run", "2 * 5 * 3 + 1", "5 * 3 * 2 + 1"},
		{"whitespace irrelevant", "2+3", "2 + 3"},
	}
	for _, tt := range equal {
		t.Run(tt.name, func(t *testing.T) {
			if CanonicalKey(tt.a) != CanonicalKey(tt.b) {
				t.Errorf("CanonicalKey(%q) = %q, CanonicalKey(%q) = %q; want equal",
					tt.a, CanonicalKey(tt.a), tt.b, CanonicalKey(tt.b))
			}
		})
	}
}

func TestCanonicalKeyDistinct(t *testing.T) {
	distinct := []struct {
		name string
		a, b string
	}{
		{"subtraction is ordered", "5 - 3", "3 - 5"},
		{"division is ordered", "6 / 3", "3 / 6"},
		{"division factors unordered", "6 / 3 * 2", "2 * 6 / 3"},
		{"no distributivity", "2 * (3 + 4)", "2 * 3 + 2 * 4"},
		{"grouping matters", "20 - (5 + 5)", "20 - 5 + 5"},
		{"power is ordered", "2 ^ 3", "3 ^ 2"},
	}
	for _, tt := range distinct {
		t.Run(tt.name, func(t *testing.T) {
			if CanonicalKey(tt.a) == CanonicalKey(tt.b) {
				t.Errorf("CanonicalKey(%q) and CanonicalKey(%q) both %q; want distinct",
					tt.a, tt.b, CanonicalKey(tt.a))
			}
		})
	}
}

func TestCanonicalKeyForm(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"2 + 3", "+2+3"},
		{"3 + 2", "+2+3"},
		{"10 - 2 * 3", "+10-2*3"},
		{"(5 + 5)", "+5+5"},
		{"3 * 2", "+2*3"},
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.expr); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"(2*3)", "2*3"},
		{"((2*3))", "2*3"},
		{"3*2", "2*3"},
		{"5*3*2", "2*3*5"},
		{"6/3*2", "6/3*2"},
		{"(2+3)*(4+1)", "(2+3)*(4+1)"},
		{"7", "7"},
	}
	for _, tt := range tests {
		if got := normalizeTerm(tt.term); got != tt.want {
			t.Errorf("normalizeTerm(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}
