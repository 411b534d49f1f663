// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"fmt"
	"os"
	"path/filepath"
)

// suffixAlphabet lists the collision suffixes tried after the bare
// name_year filename, in order.
const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz"

// AllocatePath returns a grant file path under dir that does not exist
// at call time: {token}_{year}.md, then {token}_{year}a.md through
// {token}_{year}z.md. It returns ErrSuffixesExhausted once all 27
// candidates are taken.
//
// The filesystem is the only coordination point; a concurrent-safe
// variant would replace the existence probe with exclusive create
// without touching callers.
func AllocatePath(dir, token string, year int) (string, error) {
	base := fmt.Sprintf("%s_%d", token, year)

	candidate := filepath.Join(dir, base+".md")
	if !pathExists(candidate) {
		return candidate, nil
	}
	for _, suffix := range suffixAlphabet {
		candidate = filepath.Join(dir, fmt.Sprintf("%s%c.md", base, suffix))
		if !pathExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSuffixesExhausted, base)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
