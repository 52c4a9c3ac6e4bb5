package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/insight"
)

func newSIPCommand() *cobra.Command {
	var monthly, rate string
	var years int

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Project the future value of a monthly investment plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}

			m, err := decimal.NewFromString(monthly)
			if err != nil {
				return fmt.Errorf("parsing --monthly %q: %w", monthly, err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("parsing --rate %q: %w", rate, err)
			}

			p, err := insight.ProjectSIP(m, r, years)
			if err != nil {
				return err
			}

			cur := ws.currency()
			w := cmd.OutOrStdout()
			heading.Fprintf(w, "SIP of %s a month at %s%% for %d years\n", cur.Format(p.Monthly), p.AnnualRate.String(), p.Years)
			fmt.Fprintf(w, "  Invested:      %s\n", cur.Format(p.TotalInvested))
			fmt.Fprintf(w, "  Future value:  %s\n", cur.Format(p.FutureValue))
			fmt.Fprintf(w, "  Gain:          %s\n", cur.Format(p.Gain))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthly, "monthly", "5000", "amount invested every month")
	cmd.Flags().StringVar(&rate, "rate", "12", "expected annual return in percent")
	cmd.Flags().IntVar(&years, "years", 10, "investment horizon in years")

	return cmd
}
