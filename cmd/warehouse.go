package cmd

import (
	"github.com/spf13/cobra"
)

// warehouseCmd groups the warehouse bootstrap operations.
var warehouseCmd = newWarehouseCmd()

func newWarehouseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warehouse",
		Short: "Manage the blueprint warehouse",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newWarehouseInitCmd())

	return cmd
}

func newWarehouseInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Bootstrap the iteration ledger from a warehouse scan",
		Long: `Recursively discover every blueprint under the warehouse root and write
a fresh iteration ledger with each blueprint at its first iteration.

Fails if the ledger file already has content; existing data is never
overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildWorkflow(cmd).Bootstrap(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(warehouseCmd)
}
