package phone

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "0712345678", "0712345678"},
		{"spaces and plus", "+254 712 345 678", "254712345678"},
		{"hyphens and parens", "(071) 234-5678", "0712345678"},
		{"letters stripped", "07one2345678", "072345678"},
		{"empty", "", ""},
		{"only formatting", "+- ()", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_FormattingVariantsCollide(t *testing.T) {
	t.Parallel()

	// Two renderings of the same local number collapse to one handle.
	if Normalize("0712 345-678") != Normalize("0712345678") {
		t.Fatal("expected formatting variants of the same digits to collide")
	}

	// No country-code folding: a prefixed rendering stays distinct.
	if Normalize("+254712345678") == Normalize("0712345678") {
		t.Fatal("expected country-code prefixed number to remain distinct")
	}
}
