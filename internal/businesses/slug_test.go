package businesses

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Mama's Kitchen", "mamas-kitchen"},
		{"whitespace runs", "  Soweto   Spaza  Shop ", "soweto-spaza-shop"},
		{"punctuation stripped", "Joe's Auto & Tyre Repair!", "joes-auto-tyre-repair"},
		{"underscores collapse", "cape_town__traders", "cape-town-traders"},
		{"mixed separators", "Br aai_-_Spot", "br-aai-spot"},
		{"leading trailing hyphens", "--The Shop--", "the-shop"},
		{"already slug", "lokolo-market", "lokolo-market"},
		{"digits kept", "24/7 Kiosk No 5", "247-kiosk-no-5"},
		{"empty", "   ", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	inputs := []string{"Mama's Kitchen", "  Soweto   Spaza  Shop ", "cape_town__traders"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
