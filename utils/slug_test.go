package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Other", "other"},
		{"Home  Repair!", "home-repair"},
		{"  Trimmed  ", "trimmed"},
		{"already-slugged", "already-slugged"},
		{"Uppercase AND Digits 42", "uppercase-and-digits-42"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}

	// Idempotent by contract.
	for _, tt := range tests {
		once := Slugify(tt.in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify is not idempotent for %q: %q then %q", tt.in, once, twice)
		}
	}
}

func TestKeywordOverlap(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		phrase     string
		minWordLen int
		want       bool
	}{
		{"substring match", "need pipe repair today", "pipe repair", 3, true},
		{"shared long word", "experienced in plumbing work", "plumbing services", 3, true},
		{"short shared word below threshold", "cut the gas line", "gas", 3, false},
		{"short word passes looser threshold", "dog walking help", "dog walking", 2, true},
		{"no overlap", "paint the fence", "pipe repair", 3, false},
		{"empty phrase", "anything", "", 3, false},
		{"case insensitive", "FIX THE PIPES", "pipes", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordOverlap(tt.text, tt.phrase, tt.minWordLen); got != tt.want {
				t.Errorf("KeywordOverlap(%q, %q, %d) = %v; want %v",
					tt.text, tt.phrase, tt.minWordLen, got, tt.want)
			}
		})
	}
}
