// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grant normalizes form submissions into grant records and
// author profiles and materializes them as front-matter content files.
package grant

import (
	"fmt"
	"strings"
	"unicode"
)

// nameCutset is trimmed from both ends of a raw name before parsing.
const nameCutset = " \t\r\n,"

// NameToken derives the lower-cased lastname_firstname filename token
// from a free-text author name.
//
// A name containing a comma or the literal " and " is treated as
// leading-with-the-last-name ("Smith, Jane"): the first token is the
// last name and the next token the first name. A plain "First Middle
// Last" name takes the last token as the last name. A single-token name
// yields name_name. Legacy multi-author strings joined by "and" or
// commas yield a token for the nearest name only; splitting them fully
// is the current format's job.
func NameToken(raw string) (string, error) {
	name := strings.Trim(raw, nameCutset)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, raw)
	}

	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	var first, last string
	switch {
	case len(tokens) == 1:
		first, last = tokens[0], tokens[0]
	case strings.Contains(name, ",") || strings.Contains(name, " and "):
		last, first = tokens[0], tokens[1]
	default:
		first, last = tokens[0], tokens[len(tokens)-1]
	}

	return strings.ToLower(last + "_" + first), nil
}
