package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bpship.dev/pkg/bpship/internal/adapter"
	"bpship.dev/pkg/bpship/internal/controller"
)

var ledgerFormatFlag string

// ledgerCmd represents the ledger command.
var ledgerCmd = newLedgerCmd()

func newLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the tracked blueprints and their iterations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromViper()
			store := adapter.NewFileLedgerStore(afero.NewOsFs(), cfg.LedgerPath())

			ledger, err := store.Load()
			if err != nil {
				return err
			}

			switch ledgerFormatFlag {
			case "yaml":
				data, err := yaml.Marshal(ledger)
				if err != nil {
					return fmt.Errorf("encode ledger as yaml: %w", err)
				}

				cmd.Print(string(data))
			case "table":
				controller.NewSimpleUI(cmd).DisplayLedger(ledger)
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", ledgerFormatFlag)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&ledgerFormatFlag, "format", "f", "table", "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
}
