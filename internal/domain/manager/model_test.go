package manager

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Bob W":    "bobw",
		"bob_w":    "bobw",
		"BOB-W!":   "bobw",
		"  alice ": "alice",
		"___":      "",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamesMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"Bob W", "bob_w", true},
		{"bob", "bob_w", true},
		{"bob_w", "bob", true},
		{"alice", "bob", false},
		{"", "bob", false},
		{"__", "bob", false},
	}
	for _, tc := range cases {
		if got := NamesMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("NamesMatch(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
