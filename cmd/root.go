// Package cmd provides the root command and CLI setup for bpship.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bpship.dev/pkg/bpship/internal/adapter"
	"bpship.dev/pkg/bpship/internal/controller"
	"bpship.dev/pkg/bpship/internal/domain"
)

var warehouseRootFlag string
var extensionFlag string
var ledgerFileFlag string
var versionFileFlag string
var vcsBinaryFlag string

// verboseFlag switches file logging to Debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

const rootLongDescription = `bpship automates blueprint releases for a content warehouse.

It reads the version-control status, tracks a per-blueprint iteration
counter in a persisted ledger, bumps the repository-wide release version,
and walks you through a confirmable stage, commit, tag, and push sequence
for every changed blueprint.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpship",
		Short: "Blueprint release automation",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&warehouseRootFlag, rootFlagName, "r",
		viper.GetString(rootConfigKey),
		"warehouse root directory",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVarP(
		&extensionFlag, extensionFlagName, "e",
		viper.GetString(extensionConfigKey),
		"blueprint artifact extension",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionFlagName), extensionConfigKey)

	cmd.PersistentFlags().StringVar(
		&ledgerFileFlag, ledgerFileFlagName,
		viper.GetString(ledgerFileConfigKey),
		"iteration ledger file, relative to the warehouse root",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(ledgerFileFlagName), ledgerFileConfigKey)

	cmd.PersistentFlags().StringVar(
		&versionFileFlag, versionFileFlagName,
		viper.GetString(versionFileConfigKey),
		"release version file, relative to the warehouse root",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(versionFileFlagName), versionFileConfigKey)

	cmd.PersistentFlags().StringVar(
		&vcsBinaryFlag, vcsBinaryFlagName,
		viper.GetString(vcsBinaryConfigKey),
		"version-control executable",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(vcsBinaryFlagName), vcsBinaryConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file location")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildWorkflow assembles the workflow with its concrete dependencies.
// Construction happens at run time so flag and config values are settled.
func buildWorkflow(cmd *cobra.Command) domain.Workflow {
	cfg := configFromViper()
	fs := afero.NewOsFs()

	return domain.NewWorkflow(
		cfg,
		adapter.NewGitVCS(cfg.VCSBinary, cfg.Root, cfg.CommandTimeout),
		adapter.NewFileLedgerStore(fs, cfg.LedgerPath()),
		adapter.NewFileVersionStore(fs, cfg.VersionPath()),
		adapter.NewLocalWarehouseFS(fs),
		controller.NewUI(cmd, controller.IsTTY(os.Stdout)),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
