// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GrantRecord is the canonical front-matter payload for one grant file.
// Field order here is the serialization order. Exactly one of the two
// author shapes is populated: Authors (current format) or the scalar
// Author and its sibling fields (legacy format). Optional fields carry
// omitempty so that empty submissions leave no key behind.
type GrantRecord struct {
	// Layout is always "grant"; the site generator selects its template by it.
	Layout string `yaml:"layout"`

	Title string `yaml:"title"`

	// Authors is the current-format author list.
	Authors []Author `yaml:"authors,omitempty"`

	// Legacy scalar author fields. ORCID keeps its historical upper-case
	// key; existing site content depends on it.
	Author      string `yaml:"author,omitempty"`
	ORCID       string `yaml:"ORCID,omitempty"`
	Institution string `yaml:"institution,omitempty"`
	Website     string `yaml:"website,omitempty"`
	Twitter     string `yaml:"twitter,omitempty"`

	Year       int    `yaml:"year"`
	Funder     string `yaml:"funder"`
	Discipline string `yaml:"discipline"`

	// Status is lower-cased on output regardless of input casing.
	Status string `yaml:"status"`

	Program string `yaml:"program,omitempty"`

	// Link points at the proposal: either the externally supplied URL or
	// the public URL of a downloaded proposal file.
	Link string `yaml:"link"`

	// LinkName labels the link ("Proposal" for downloaded files). The
	// site generator expects it as a one-element sequence; the writer
	// rewrites the serialized scalar into sequence form.
	LinkName string `yaml:"link_name,omitempty"`
}

// AuthorProfile is the canonical front-matter payload for one author
// file. Profiles are created once and never updated; legacy-format
// submissions never populate ORCID.
type AuthorProfile struct {
	Name        string `yaml:"name"`
	Institution string `yaml:"institution,omitempty"`
	ORCID       string `yaml:"orcid,omitempty"`
	Website     string `yaml:"website,omitempty"`
}
