// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package netlify

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ogrants/grantsync/pkg/types"
)

// site is one entry from the Netlify sites listing.
type site struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	CustomDomain string `json:"custom_domain"`
}

// submission is one entry from the Netlify form-submissions listing.
// Form fields arrive untyped under data.
type submission struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// parseSubmission converts a raw Netlify submission into the canonical
// record. Netlify posts form fields as flat strings, so the structured
// authors list arrives JSON-encoded inside its field; decoded lists
// from older captures are handled too.
func parseSubmission(raw submission) types.Submission {
	d := raw.Data
	sub := types.Submission{
		ID:          raw.ID,
		Title:       field(d, "title"),
		Year:        field(d, "year"),
		Funder:      field(d, "funder"),
		Discipline:  field(d, "discipline"),
		Status:      field(d, "status"),
		Program:     field(d, "program"),
		Link:        field(d, "link"),
		Author:      field(d, "author"),
		ORCID:       field(d, "ORCID"),
		Institution: field(d, "institution"),
		Website:     field(d, "website"),
		Twitter:     field(d, "twitter"),
	}

	switch v := d["authors"].(type) {
	case string:
		if v != "" {
			json.Unmarshal([]byte(v), &sub.Authors)
		}
	case []any:
		if encoded, err := json.Marshal(v); err == nil {
			json.Unmarshal(encoded, &sub.Authors)
		}
	}

	if f, ok := d["file"].(map[string]any); ok {
		upload := types.Upload{
			Filename: field(f, "filename"),
			URL:      field(f, "url"),
		}
		if size, ok := f["size"].(float64); ok {
			upload.Size = int64(size)
		}
		if upload.Filename != "" || upload.URL != "" {
			sub.File = &upload
		}
	}

	return sub
}

// field reads a form field as a trimmed string. Numeric values (the
// year, when the form submits it unquoted) are formatted back to their
// integer text.
func field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}
