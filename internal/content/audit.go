// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// grantMeta is the subset of grant front matter the audit inspects.
type grantMeta struct {
	Layout  string           `yaml:"layout"`
	Title   string           `yaml:"title"`
	Authors []map[string]any `yaml:"authors"`
	Author  string           `yaml:"author"`
	Funder  string           `yaml:"funder"`
	Status  string           `yaml:"status"`
	Link    string           `yaml:"link"`
}

// authorMeta is the subset of author front matter the audit inspects.
type authorMeta struct {
	Name string `yaml:"name"`
}

// AuditResult summarizes one audit pass over the content tree.
type AuditResult struct {
	Checked int
	Issues  []string
}

// Clean reports whether the audit found no issues.
func (r AuditResult) Clean() bool {
	return len(r.Issues) == 0
}

// AuditContent re-parses every grant and author file and reports files
// a site build would render incorrectly: unparseable front matter,
// missing required keys, a missing link, or a grant with no author
// information in either schema generation. A missing directory is not
// an error; it audits as empty.
func AuditContent(grantsDir, authorsDir string) (AuditResult, error) {
	var result AuditResult

	err := auditDir(grantsDir, &result, func(path string, data []byte) {
		var meta grantMeta
		if _, err := frontmatter.Parse(strings.NewReader(string(data)), &meta); err != nil {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: unparseable front matter: %v", path, err))
			return
		}
		if meta.Layout != "grant" {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: layout is %q, want \"grant\"", path, meta.Layout))
		}
		for key, value := range map[string]string{
			"title":  meta.Title,
			"funder": meta.Funder,
			"status": meta.Status,
		} {
			if value == "" {
				result.Issues = append(result.Issues, fmt.Sprintf("%s: missing %s", path, key))
			}
		}
		if meta.Link == "" {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: missing link", path))
		}
		if len(meta.Authors) == 0 && meta.Author == "" {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: no author information", path))
		}
	})
	if err != nil {
		return result, err
	}

	err = auditDir(authorsDir, &result, func(path string, data []byte) {
		var meta authorMeta
		if _, err := frontmatter.Parse(strings.NewReader(string(data)), &meta); err != nil {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: unparseable front matter: %v", path, err))
			return
		}
		if meta.Name == "" {
			result.Issues = append(result.Issues, fmt.Sprintf("%s: missing name", path))
		}
	})
	return result, err
}

// auditDir runs check over every .md file directly under dir.
func auditDir(dir string, result *AuditResult, check func(path string, data []byte)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		result.Checked++
		check(path, data)
	}
	return nil
}
