// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ogrants/grantsync/internal/content"
	"github.com/ogrants/grantsync/internal/ledger"
	"github.com/ogrants/grantsync/pkg/types"
)

// BatchResult holds the outcome of one sync run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of submissions handled.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped + r.Failed
}

// HasFailures reports whether any submission failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessSubmission normalizes one submission, writes its grant file,
// and ensures its author files exist. It returns the grant file path.
func ProcessSubmission(client *http.Client, sub types.Submission, cfg types.ContentConfig, w io.Writer) (string, error) {
	rec, path, err := NormalizeSubmission(client, sub, cfg, w)
	if err != nil {
		return "", err
	}
	if err := content.WriteFrontMatter(path, rec, w); err != nil {
		return "", err
	}
	if _, err := EnsureAuthorFiles(sub, cfg, w); err != nil {
		return path, err
	}
	return path, nil
}

// ProcessBatch handles submissions one at a time, in order. A failure
// aborts only the submission that triggered it. Submissions already in
// the ledger are skipped; each success is recorded. A nil store
// disables ledger checks.
func ProcessBatch(client *http.Client, subs []types.Submission, cfg types.ContentConfig, store *ledger.Store, w io.Writer) BatchResult {
	var result BatchResult
	for _, sub := range subs {
		if store != nil {
			seen, err := store.Seen(sub.ID)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", sub.Title, err)
				result.Failed++
				continue
			}
			if seen {
				fmt.Fprintf(w, "skipped: %s (already processed)\n", sub.Title)
				result.Skipped++
				continue
			}
		}

		path, err := ProcessSubmission(client, sub, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", sub.Title, err)
			result.Failed++
			continue
		}

		if store != nil {
			if err := store.Record(sub.ID, sub.Title, path); err != nil {
				fmt.Fprintf(w, "warning: %s not recorded in ledger: %v\n", sub.Title, err)
			}
		}
		result.Processed++
	}

	fmt.Fprintf(w, "\nSync summary: %d processed, %d skipped, %d failed (total: %d)\n",
		result.Processed, result.Skipped, result.Failed, result.Total())
	return result
}
