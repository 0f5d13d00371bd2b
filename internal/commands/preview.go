package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPreviewCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Show the entries a conversion would produce without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, v, args[0])
		},
	}

	addInputFlags(cmd)

	return cmd
}

func runPreview(cmd *cobra.Command, v *viper.Viper, input string) error {
	svc, logger, err := newService(cmd, v)
	if err != nil {
		return err
	}
	doc, err := svc.Build(input, windowFrom(v))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(out)
	creditStyle := r.NewStyle().Foreground(lipgloss.Color("10")) // green
	debitStyle := r.NewStyle().Foreground(lipgloss.Color("9"))   // red

	for _, e := range doc.Entries {
		line := fmt.Sprintf("%4d  %s  %12s  %-30s  %s", e.Position, e.Date, e.SignedAmount(), e.Payee, e.Memo)
		style := debitStyle
		if e.Credit {
			style = creditStyle
		}
		fmt.Fprintln(out, style.Render(line))
	}

	totals, err := doc.Totals()
	if err != nil {
		logger.Warn("cannot compute totals", "input", input, "err", err)
		fmt.Fprintf(out, "\n%d record(s)\n", len(doc.Entries))
		return nil
	}
	fmt.Fprintf(out, "\n%d record(s), credits %s, debits %s, net %s\n",
		totals.Count, totals.Credits.StringFixed(2), totals.Debits.StringFixed(2), totals.Net().StringFixed(2))
	return nil
}
