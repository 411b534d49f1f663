// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package netlify fetches pending form submissions from the Netlify
// API. The rest of the pipeline consumes the deserialized records and
// never touches HTTP transport itself.
package netlify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ogrants/grantsync/internal/httputil"
	"github.com/ogrants/grantsync/pkg/types"
)

// apiBase is the Netlify API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.netlify.com/api/v1"

// ErrSiteNotFound reports that no site accessible to the token matches
// the configured site URL.
var ErrSiteNotFound = errors.New("no accessible site matches the configured URL")

// Client calls the Netlify API with a bearer token.
type Client struct {
	HTTP  *http.Client
	Token string
}

// SiteID lists all sites accessible to the token and returns the id of
// the one whose URL or custom domain matches siteURL.
func (c *Client) SiteID(ctx context.Context, siteURL string, cfg types.NetlifyConfig) (string, error) {
	var sites []site
	if err := c.getJSON(ctx, apiBase+"/sites", cfg, &sites); err != nil {
		return "", fmt.Errorf("listing sites: %w", err)
	}

	want := normalizeSiteURL(siteURL)
	for _, s := range sites {
		if normalizeSiteURL(s.URL) == want || normalizeSiteURL(s.CustomDomain) == want {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSiteNotFound, siteURL)
}

// Submissions lists the verified form submissions for a site and
// returns them as canonical records, in the order the API returns them.
func (c *Client) Submissions(ctx context.Context, siteID string, cfg types.NetlifyConfig) ([]types.Submission, error) {
	var raw []submission
	url := fmt.Sprintf("%s/sites/%s/submissions", apiBase, siteID)
	if err := c.getJSON(ctx, url, cfg, &raw); err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	subs := make([]types.Submission, 0, len(raw))
	for _, r := range raw {
		subs = append(subs, parseSubmission(r))
	}
	return subs, nil
}

// getJSON performs an authenticated GET and decodes the JSON response,
// retrying on rate limits.
func (c *Client) getJSON(ctx context.Context, url string, cfg types.NetlifyConfig, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return fmt.Errorf("Netlify API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Netlify API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing Netlify response: %w", err)
	}
	return nil
}

// normalizeSiteURL strips scheme and trailing slashes so that
// "https://www.ogrants.org/" matches a site reporting
// "http://www.ogrants.org" or a bare custom domain.
func normalizeSiteURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	return strings.TrimRight(u, "/")
}
