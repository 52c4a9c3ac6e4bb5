package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/advisor"
	"github.com/financely/financely/internal/insight"
	"github.com/financely/financely/internal/server"
)

var severityColor = map[insight.RecommendationType]*color.Color{
	insight.RecCritical:   color.New(color.FgRed, color.Bold),
	insight.RecAlert:      color.New(color.FgRed),
	insight.RecWarning:    color.New(color.FgYellow),
	insight.RecSuggestion: color.New(color.FgCyan),
	insight.RecInfo:       color.New(color.FgBlue),
}

var tierColor = map[insight.BudgetTier]*color.Color{
	insight.BudgetOver:    color.New(color.FgRed),
	insight.BudgetWarning: color.New(color.FgYellow),
}

var heading = color.New(color.Bold)

func newReportCommand() *cobra.Command {
	var snapshotPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize finances, score them and list recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			snap, err := ws.loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			c := insight.BuildContext(snap)
			p := insight.Predict(c)
			quick := insight.QuickInsights(c, p, ws.currency())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(server.InsightsResponse{Context: c, Insight: p, QuickInsights: quick})
			}
			title := "Financial report"
			if ws.cfg.Profile.Name != "" {
				title += " for " + ws.cfg.Profile.Name
			}
			printReport(cmd.OutOrStdout(), title, c, p, quick, ws.currency())
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "read this snapshot file instead of the workspace")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")

	return cmd
}

func printReport(w io.Writer, title string, c insight.Context, p insight.PredictiveInsight, quick []string, cur insight.Currency) {
	heading.Fprintln(w, title)
	fmt.Fprintf(w, "  Income:        %s\n", cur.Format(c.TotalIncome))
	fmt.Fprintf(w, "  Expenses:      %s\n", cur.Format(c.TotalExpense))
	fmt.Fprintf(w, "  Balance:       %s\n", cur.Format(c.CurrentBalance))
	fmt.Fprintf(w, "  Savings rate:  %s%%\n", c.SavingsRate.StringFixed(1))
	fmt.Fprintf(w, "  Transactions:  %d\n", c.TransactionCount)

	fmt.Fprintln(w)
	heading.Fprintln(w, "Outlook")
	fmt.Fprintf(w, "  Health score:      %d/100 (%s risk)\n", p.HealthScore, p.RiskLevel)
	fmt.Fprintf(w, "  Next month:        %s\n", cur.Format(p.PredictedExpense))
	fmt.Fprintf(w, "  Expense trend:     %s\n", advisor.TrendLabel(c))

	if len(c.TopCategories) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Top categories")
		for _, cat := range c.TopCategories {
			fmt.Fprintf(w, "  %-20s %s (%d)\n", cat.Name, cur.Format(cat.Amount), cat.Count)
		}
	}

	if len(c.BudgetStatus) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Budgets")
		for _, b := range c.BudgetStatus {
			line := fmt.Sprintf("  %-20s %s of %s (%s%%) %s", b.Category, cur.Format(b.Spent), cur.Format(b.Limit), b.Percentage.StringFixed(1), b.Tier)
			if col, ok := tierColor[b.Tier]; ok {
				col.Fprintln(w, line)
				continue
			}
			fmt.Fprintln(w, line)
		}
		bs := c.BudgetSummary
		fmt.Fprintf(w, "  %-20s %s of %s (%s left)\n", "Total", cur.Format(bs.TotalSpent), cur.Format(bs.TotalLimit), cur.Format(bs.Remaining))
	}

	if len(c.GoalSummary.Goals) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Goals")
		for _, g := range c.GoalSummary.Goals {
			state := fmt.Sprintf("%s%%, %s to go", g.Percentage.StringFixed(1), cur.Format(g.Remaining))
			if g.Achieved {
				state = "achieved"
			}
			fmt.Fprintf(w, "  %-20s %s of %s (%s)\n", g.Name, cur.Format(g.Current), cur.Format(g.Target), state)
		}
		gs := c.GoalSummary
		fmt.Fprintf(w, "  %-20s %s of %s, %d of %d achieved\n", "Total", cur.Format(gs.TotalCurrent), cur.Format(gs.TotalTarget), gs.Completed, len(gs.Goals))
	}

	if pk := c.Patterns.MostExpensiveDay; pk != nil {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Patterns")
		fmt.Fprintf(w, "  Biggest spending day: %s (%s)\n", pk.Name, cur.Format(pk.Amount))
		fmt.Fprintf(w, "  Average transaction:  %s\n", cur.Format(c.Patterns.AverageTransaction))
	}

	if len(p.Recommendations) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Recommendations")
		for _, r := range p.Recommendations {
			severityColor[r.Type].Fprintf(w, "  [%s] %s\n", r.Type, r.Title)
			fmt.Fprintf(w, "      %s\n", r.Message)
		}
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Quick insights")
	for _, q := range quick {
		fmt.Fprintf(w, "  %s\n", q)
	}
}
