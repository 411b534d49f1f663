// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import "errors"

// Sentinel errors for the normalization pipeline. All of them abort the
// submission that triggered them; the batch continues.
var (
	// ErrEmptyName reports an author name that is empty after trimming.
	ErrEmptyName = errors.New("empty author name")

	// ErrSuffixesExhausted reports that all 26 letter suffixes for a
	// name+year filename are taken.
	ErrSuffixesExhausted = errors.New("filename suffixes exhausted")

	// ErrMissingProposal reports a submission with neither a link nor an
	// attached proposal file.
	ErrMissingProposal = errors.New("submission has no link and no attached proposal")

	// ErrProposalExists reports that the proposal download destination
	// already exists on disk.
	ErrProposalExists = errors.New("proposal file already exists")

	// ErrDownloadFailed reports a failed proposal transfer.
	ErrDownloadFailed = errors.New("proposal download failed")

	// ErrInvalidYear reports a submission year that is not an integer.
	ErrInvalidYear = errors.New("invalid submission year")
)
