package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ogrants/grantsync/internal/content"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check existing grant and author files for broken front matter",
	Long: `Audit re-parses every content file and reports anything a site build
would render incorrectly: unparseable front matter, missing required
keys, or a grant with no proposal link.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	result, err := content.AuditContent(
		viper.GetString("content.grants_dir"),
		viper.GetString("content.authors_dir"),
	)
	if err != nil {
		return err
	}

	for _, issue := range result.Issues {
		fmt.Println(issue)
	}
	fmt.Printf("checked %d file(s), %d issue(s)\n", result.Checked, len(result.Issues))

	if !result.Clean() {
		return fmt.Errorf("audit found %d issue(s)", len(result.Issues))
	}
	return nil
}
