// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the grantsync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ogrants/grantsync/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the grantsync CLI.
var rootCmd = &cobra.Command{
	Use:   "grantsync",
	Short: "Convert grant-proposal form submissions into site content",
	Long: `grantsync fetches pending grant-proposal submissions from the Netlify
forms API and materializes them as front-matter content files for the
ogrants.org static site: one grant record per submission and one profile
per author.

Runs are one-shot and idempotent: a local ledger remembers processed
submissions, existing author profiles are never overwritten, and grant
filename collisions get letter suffixes instead of clobbering files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

// resolveToken returns the Netlify bearer token: the flag value first,
// then the NETLIFY_AUTH_TOKEN environment (after .env loading), then
// the .secrets/ key file.
func resolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("NETLIFY_AUTH_TOKEN"); v != "" {
		return v
	}
	return loadedSecrets[secrets.NetlifyTokenKey]
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./grantsync.yaml or ~/.config/grantsync/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("grantsync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "grantsync"))
		}
	}

	viper.SetEnvPrefix("GRANTSYNC")
	viper.AutomaticEnv()

	viper.SetDefault("netlify.site_url", "https://www.ogrants.org")
	viper.SetDefault("content.grants_dir", "_grants")
	viper.SetDefault("content.authors_dir", "_authors")
	viper.SetDefault("content.proposals_dir", "proposals")
	viper.SetDefault("content.base_url", "https://www.ogrants.org")
	viper.SetDefault("ledger.path", filepath.Join("state", "grantsync.db"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
