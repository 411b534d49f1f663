// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the grantsync pipeline.
package types

// Upload describes a file attached to a form submission.
type Upload struct {
	// Filename is the name the submitter gave the uploaded file.
	Filename string `json:"filename"`

	// URL is the form backend's hosted location for the uploaded bytes.
	URL string `json:"url"`

	// Size is the upload size in bytes, when the backend reports it.
	Size int64 `json:"size,omitempty"`
}

// Author is one entry in a current-format authors list. Optional fields
// left empty are omitted from serialized output entirely.
type Author struct {
	// Name is the author's full name as submitted. Required.
	Name string `json:"name" yaml:"name"`

	// Institution is the author's affiliation.
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`

	// ORCID is the author's ORCID identifier.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	// Website is the author's personal or lab page.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Submission is one grant-proposal form record as returned by the form
// backend. Author information arrives in one of two shapes: the current
// format fills Authors; the legacy format fills the scalar Author along
// with its sibling fields. A non-empty Authors list selects the current
// format.
type Submission struct {
	// ID is the form backend's identifier for the submission.
	ID string

	Title      string
	Year       string
	Funder     string
	Discipline string
	Status     string

	// Program is the funder's program name. Optional.
	Program string

	// Link is an externally hosted proposal URL. Optional; when empty an
	// attached File is downloaded instead.
	Link string

	// File is the attached proposal document, if any.
	File *Upload

	// Authors holds the current-format author list.
	Authors []Author

	// Legacy single-author fields. Author may contain several names
	// joined by "and" or commas; ORCID may be joined the same way.
	Author      string
	ORCID       string
	Institution string
	Website     string
	Twitter     string
}

// IsLegacy reports whether the submission uses the legacy single-author
// shape.
func (s Submission) IsLegacy() bool {
	return len(s.Authors) == 0
}

// FirstAuthorName returns the name the grant filename derives from: the
// first listed author, or the legacy author string.
func (s Submission) FirstAuthorName() string {
	if len(s.Authors) > 0 {
		return s.Authors[0].Name
	}
	return s.Author
}
