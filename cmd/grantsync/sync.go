package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ogrants/grantsync/internal/grant"
	"github.com/ogrants/grantsync/internal/ledger"
	"github.com/ogrants/grantsync/internal/netlify"
	"github.com/ogrants/grantsync/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "grantsync/0.1"
)

// ErrMissingToken reports that no Netlify token was configured.
var ErrMissingToken = errors.New("no Netlify token: set --token, NETLIFY_AUTH_TOKEN, or .secrets/netlify-auth-token")

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch pending submissions and write grant and author files",
	Long: `Sync looks up the site by its public URL, lists its pending form
submissions, and writes one grant record per submission plus one author
profile per author. Submissions already in the ledger are skipped; a
failed submission aborts only itself.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("token", "", "Netlify bearer token (default: NETLIFY_AUTH_TOKEN)")
	syncCmd.Flags().String("site-url", "", "public URL of the site (default from config)")
	syncCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	syncCmd.Flags().Bool("quiet", false, "suppress per-file notices")
	syncCmd.Flags().Bool("no-ledger", false, "process without consulting or updating the ledger")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	token := resolveToken(tokenFlag)
	if token == "" {
		return ErrMissingToken
	}

	siteURL, _ := cmd.Flags().GetString("site-url")
	if siteURL == "" {
		siteURL = viper.GetString("netlify.site_url")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	noLedger, _ := cmd.Flags().GetBool("no-ledger")

	netlifyCfg := types.NetlifyConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		SiteURL: siteURL,
		Token:   token,
	}
	contentCfg := types.ContentConfig{
		GrantsDir:    viper.GetString("content.grants_dir"),
		AuthorsDir:   viper.GetString("content.authors_dir"),
		ProposalsDir: viper.GetString("content.proposals_dir"),
		BaseURL:      viper.GetString("content.base_url"),
	}

	var out io.Writer = os.Stdout
	if quiet {
		out = io.Discard
	}

	client := &http.Client{Timeout: timeout}
	nc := &netlify.Client{HTTP: client, Token: token}

	ctx := cmd.Context()
	siteID, err := nc.SiteID(ctx, siteURL, netlifyCfg)
	if err != nil {
		return err
	}
	subs, err := nc.Submissions(ctx, siteID, netlifyCfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "fetched %d submission(s) for %s\n", len(subs), siteURL)

	var store *ledger.Store
	if !noLedger {
		store, err = ledger.Open(viper.GetString("ledger.path"))
		if err != nil {
			return err
		}
		defer store.Close()
	}

	result := grant.ProcessBatch(client, subs, contentCfg, store, out)
	if result.HasFailures() {
		return fmt.Errorf("%d submission(s) failed", result.Failed)
	}
	return nil
}
