// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ogrants/grantsync/pkg/types"
)

// defaultBaseURL is the public site root when ContentConfig leaves
// BaseURL empty.
const defaultBaseURL = "https://www.ogrants.org"

// NormalizeSubmission converts a raw submission into a grant record and
// allocates its target file path. The path derives from the first
// author's name (current format) or the sole author string (legacy
// format) and is allocated before any download side effect, so a
// filename collision surfaces before a network transfer starts.
//
// Link resolution prefers an explicit non-empty link; otherwise an
// attached file with a non-empty filename is downloaded to the
// proposals directory and the record links to its public URL. A
// submission with neither fails with ErrMissingProposal.
func NormalizeSubmission(client *http.Client, sub types.Submission, cfg types.ContentConfig, w io.Writer) (*types.GrantRecord, string, error) {
	token, err := NameToken(sub.FirstAuthorName())
	if err != nil {
		return nil, "", err
	}

	year, err := strconv.Atoi(strings.TrimSpace(sub.Year))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidYear, sub.Year)
	}

	path, err := AllocatePath(cfg.GrantsDir, token, year)
	if err != nil {
		return nil, "", err
	}

	rec := &types.GrantRecord{
		Layout:     "grant",
		Title:      sub.Title,
		Year:       year,
		Funder:     sub.Funder,
		Discipline: sub.Discipline,
		Status:     strings.ToLower(sub.Status),
		Program:    sub.Program,
	}

	if sub.IsLegacy() {
		rec.Author = sub.Author
		rec.ORCID = sub.ORCID
		rec.Institution = sub.Institution
		rec.Website = sub.Website
		rec.Twitter = sub.Twitter
	} else {
		for _, a := range sub.Authors {
			rec.Authors = append(rec.Authors, types.Author{
				Name:        a.Name,
				Institution: a.Institution,
				ORCID:       a.ORCID,
				Website:     a.Website,
			})
		}
	}

	rec.Link, rec.LinkName, err = resolveLink(client, sub, path, cfg, w)
	if err != nil {
		return nil, "", err
	}

	return rec, path, nil
}

// resolveLink returns the proposal link and its label. An explicit link
// wins and triggers no download.
func resolveLink(client *http.Client, sub types.Submission, grantPath string, cfg types.ContentConfig, w io.Writer) (link, linkName string, err error) {
	if sub.Link != "" {
		return sub.Link, "", nil
	}

	if sub.File == nil || sub.File.Filename == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMissingProposal, sub.Title)
	}

	// Proposal filename mirrors the grant file's base name.
	name := strings.TrimSuffix(filepath.Base(grantPath), ".md") + ".pdf"
	dest := filepath.Join(cfg.ProposalsDir, name)
	if pathExists(dest) {
		return "", "", fmt.Errorf("%w: %s", ErrProposalExists, dest)
	}

	fmt.Fprintf(w, "downloading proposal: %s\n", name)
	if err := downloadProposal(client, sub.File.URL, dest); err != nil {
		return "", "", err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return baseURL + "/proposals/" + name, "Proposal", nil
}

// downloadProposal fetches url to destPath using a temporary file that
// is renamed into place on success.
func downloadProposal(client *http.Client, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("creating proposals directory: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrDownloadFailed, err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d from %s", ErrDownloadFailed, resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".grantsync-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing download: %v", ErrDownloadFailed, copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
