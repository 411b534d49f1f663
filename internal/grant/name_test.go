// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"errors"
	"testing"
)

func TestNameToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Plain "First Last" layout.
		{"first last", "Jane Smith", "smith_jane"},
		{"first middle last", "Mary Jane Watson", "watson_mary"},
		{"mixed case", "aNN lEE", "lee_ann"},
		{"surrounding whitespace", "  Jane Smith  ", "smith_jane"},

		// "Last, First" layout.
		{"last comma first", "Smith, Jane", "smith_jane"},
		{"last comma first middle", "Smith, Jane Q", "smith_jane"},
		{"comma no space", "Smith,Jane", "smith_jane"},
		{"trailing comma", "Smith, Jane,", "smith_jane"},

		// Single-token names duplicate the token.
		{"single token", "Cher", "cher_cher"},
		{"single token with commas", " ,Cher, ", "cher_cher"},

		// Legacy and-joined strings: only the nearest name's tokens are
		// used, in string order.
		{"and-joined names", "Jane Smith and Bob Jones", "jane_smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NameToken(tt.input)
			if err != nil {
				t.Fatalf("NameToken(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NameToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNameTokenEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", ",", " , ,\t"} {
		_, err := NameToken(input)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("NameToken(%q) error = %v, want ErrEmptyName", input, err)
		}
	}
}
