// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grant

import (
	"io"
	"path/filepath"

	"github.com/ogrants/grantsync/internal/content"
	"github.com/ogrants/grantsync/pkg/types"
)

// EnsureAuthorFiles writes a profile file for each author on the
// submission that does not already have one. Author files are keyed by
// name token alone, with no year and no collision suffixing. Existing
// profiles are never modified, even when the submission carries fields
// the profile lacks; re-running on the same authors writes nothing.
// It returns the number of files created.
func EnsureAuthorFiles(sub types.Submission, cfg types.ContentConfig, w io.Writer) (int, error) {
	created := 0
	for _, profile := range profilesFor(sub) {
		token, err := NameToken(profile.Name)
		if err != nil {
			return created, err
		}

		path := filepath.Join(cfg.AuthorsDir, token+".md")
		if pathExists(path) {
			continue
		}
		if err := content.WriteFrontMatter(path, profile, w); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// profilesFor builds one profile per author. The legacy scalar author
// becomes a one-element sequence; legacy profiles never carry an ORCID
// because the legacy field may hold several identifiers joined in one
// string.
func profilesFor(sub types.Submission) []types.AuthorProfile {
	if sub.IsLegacy() {
		return []types.AuthorProfile{{
			Name:        sub.Author,
			Institution: sub.Institution,
			Website:     sub.Website,
		}}
	}

	profiles := make([]types.AuthorProfile, 0, len(sub.Authors))
	for _, a := range sub.Authors {
		profiles = append(profiles, types.AuthorProfile{
			Name:        a.Name,
			Institution: a.Institution,
			ORCID:       a.ORCID,
			Website:     a.Website,
		})
	}
	return profiles
}
