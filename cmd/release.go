package cmd

import (
	"github.com/spf13/cobra"

	"bpship.dev/pkg/bpship/internal/domain"
)

var releaseStagedOnlyFlag bool
var releaseDryRunFlag bool

const releaseLongDescription = `Release every changed blueprint, one confirmation at a time.

For each changed blueprint, bpship bumps the warehouse version, stages the
ledger, version file and blueprint, commits, tags the new version, and
pushes. Declining a blueprint skips it; cancelling a prompt leaves early
without touching anything for that blueprint.`

// releaseCmd represents the release command.
var releaseCmd = newReleaseCmd()

func newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Version, commit, tag and push changed blueprints",
		Long:  releaseLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildWorkflow(cmd).Release(cmd.Context(), domain.ReleaseArgs{
				StagedOnly: releaseStagedOnlyFlag,
				DryRun:     releaseDryRunFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&releaseStagedOnlyFlag, "staged-only", "s", false, "only release changes already staged in the index")
	cmd.Flags().BoolVarP(&releaseDryRunFlag, "dry-run", "n", false, "show every release plan without prompting or executing")

	return cmd
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}
