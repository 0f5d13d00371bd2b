package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/ing2qif/internal/convert"
	"github.com/ledgerkit/ing2qif/internal/qif"
)

func newConvertCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file|directory>",
		Short: "Convert an ING CSV export (or a directory of them) to QIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args[0])
		},
	}

	addConvertFlags(cmd)

	return cmd
}

func addConvertFlags(cmd *cobra.Command) {
	addInputFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "output file (default: input with the configured extension)")
	cmd.Flags().Bool("dry-run", false, "write the QIF document to stdout instead of a file")
}

// addInputFlags registers the flags shared by commands that read exports.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("start", "s", 0, "first record to convert (1-based)")
	cmd.Flags().IntP("number", "n", 0, "number of records to convert (0 for all)")
	cmd.Flags().String("encoding", "", "input character encoding, e.g. windows-1252")
	cmd.Flags().String("delimiter", "", "input field delimiter")
}

func windowFrom(v *viper.Viper) qif.Window {
	return qif.Window{Start: v.GetInt("start"), Number: v.GetInt("number")}
}

func runConvert(cmd *cobra.Command, v *viper.Viper, input string) error {
	svc, logger, err := newService(cmd, v)
	if err != nil {
		return err
	}

	results, err := svc.Convert(convert.Params{
		Input:  input,
		Output: v.GetString("output"),
		Window: windowFrom(v),
		DryRun: v.GetBool("dry-run"),
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "QIF data written to %s\n", r.Output)
		}
	}
	if len(results) > 1 {
		logger.Info("done", "files", len(results))
	}
	return nil
}
