// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content serializes records to front-matter files and parses
// them back for auditing.
package content

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// delimiter frames the front-matter block.
const delimiter = "---\n"

// WriteFrontMatter serializes v as a YAML front-matter block framed by
// delimiter lines, with no body, and writes it to path. Parent
// directories are created as needed. A notice naming the written file
// goes to w; pass io.Discard to silence it.
func WriteFrontMatter(path string, v any, w io.Writer) error {
	text, err := Marshal(v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}

// Marshal renders v as a complete front-matter document.
func Marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("closing encoder: %w", err)
	}

	return delimiter + fixLinkName(buf.String()) + delimiter, nil
}

// fixLinkName rewrites a scalar link_name line into one-element
// sequence syntax. The record stores link_name as a plain string, so
// the serializer emits it as a scalar; the site templates iterate over
// it and require sequence form.
func fixLinkName(doc string) string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if value, ok := strings.CutPrefix(line, "link_name: "); ok {
			lines[i] = "link_name:\n- " + value
		}
	}
	return strings.Join(lines, "\n")
}
