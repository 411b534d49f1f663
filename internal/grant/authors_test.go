// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogrants/grantsync/pkg/types"
)

func TestEnsureAuthorFilesCurrentFormat(t *testing.T) {
	cfg := testContentCfg(t)
	sub := types.Submission{
		Authors: []types.Author{
			{Name: "Ann Lee", Institution: "MIT", ORCID: "0000-0001-2345-6789"},
			{Name: "Bob Jones"},
			{Name: "Carol Diaz", Website: "https://carol.example"},
		},
	}

	created, err := EnsureAuthorFiles(sub, cfg, io.Discard)
	if err != nil {
		t.Fatalf("EnsureAuthorFiles() error = %v", err)
	}
	if created != 3 {
		t.Errorf("created = %d, want 3", created)
	}

	for _, name := range []string{"lee_ann.md", "jones_bob.md", "diaz_carol.md"} {
		if _, err := os.Stat(filepath.Join(cfg.AuthorsDir, name)); err != nil {
			t.Errorf("expected author file %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(cfg.AuthorsDir, "lee_ann.md"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "name: Ann Lee") {
		t.Errorf("profile missing name, got:\n%s", text)
	}
	if !strings.Contains(text, "orcid: 0000-0001-2345-6789") {
		t.Errorf("profile missing orcid, got:\n%s", text)
	}
}

func TestEnsureAuthorFilesIdempotent(t *testing.T) {
	cfg := testContentCfg(t)
	sub := types.Submission{
		Authors: []types.Author{{Name: "Ann Lee"}},
	}

	if _, err := EnsureAuthorFiles(sub, cfg, io.Discard); err != nil {
		t.Fatal(err)
	}

	// A second run with richer data writes nothing and leaves the
	// original profile untouched.
	path := filepath.Join(cfg.AuthorsDir, "lee_ann.md")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	sub.Authors[0].ORCID = "0000-0001-2345-6789"
	created, err := EnsureAuthorFiles(sub, cfg, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if created != 0 {
		t.Errorf("created = %d, want 0 on second run", created)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("existing profile was modified")
	}
}

func TestEnsureAuthorFilesPartialExisting(t *testing.T) {
	cfg := testContentCfg(t)
	sub := types.Submission{
		Authors: []types.Author{{Name: "Ann Lee"}, {Name: "Bob Jones"}},
	}

	// Pre-create one of the two profiles.
	if err := os.MkdirAll(cfg.AuthorsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.AuthorsDir, "lee_ann.md"), []byte("manual"), 0o644); err != nil {
		t.Fatal(err)
	}

	created, err := EnsureAuthorFiles(sub, cfg, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}
}

func TestEnsureAuthorFilesLegacy(t *testing.T) {
	cfg := testContentCfg(t)
	sub := types.Submission{
		Author:      "Smith, Jane",
		ORCID:       "0000-0002-0000-0000",
		Institution: "Somewhere U",
	}

	created, err := EnsureAuthorFiles(sub, cfg, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}

	data, err := os.ReadFile(filepath.Join(cfg.AuthorsDir, "smith_jane.md"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "name: Smith, Jane") {
		t.Errorf("profile missing name, got:\n%s", text)
	}
	if !strings.Contains(text, "institution: Somewhere U") {
		t.Errorf("profile missing institution, got:\n%s", text)
	}
	// Legacy ORCID strings may hold several joined identifiers, so
	// legacy profiles never carry one.
	if strings.Contains(text, "orcid") {
		t.Errorf("legacy profile should not carry an orcid, got:\n%s", text)
	}
}
