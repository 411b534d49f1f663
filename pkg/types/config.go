package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "grantsync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NetlifyConfig holds settings for the form-backend API.
type NetlifyConfig struct {
	HTTPConfig `yaml:",inline"`

	// SiteURL is the public URL of the site whose form submissions are
	// fetched. The site id is resolved by listing the sites accessible
	// to the token and matching on this URL.
	SiteURL string `json:"site_url" yaml:"site_url"`

	// Token is the bearer token for the Netlify API. An empty token is
	// a fatal configuration error at startup.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// ContentConfig holds the content tree layout and the public URL the
// site is served from.
type ContentConfig struct {
	// GrantsDir is the directory grant records are written to (e.g. "_grants").
	GrantsDir string `json:"grants_dir" yaml:"grants_dir"`

	// AuthorsDir is the directory author profiles are written to (e.g. "_authors").
	AuthorsDir string `json:"authors_dir" yaml:"authors_dir"`

	// ProposalsDir is the directory downloaded proposal PDFs are written to.
	ProposalsDir string `json:"proposals_dir" yaml:"proposals_dir"`

	// BaseURL is the public site root used to build proposal links
	// (default "https://www.ogrants.org").
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// LedgerConfig holds settings for the processed-submission ledger.
type LedgerConfig struct {
	// Path is the SQLite database location (e.g. "state/grantsync.db").
	Path string `json:"path" yaml:"path"`
}

// SyncConfig groups all settings for one sync run.
type SyncConfig struct {
	Netlify NetlifyConfig `json:"netlify" yaml:"netlify"`
	Content ContentConfig `json:"content" yaml:"content"`
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
}
