package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/advicelog"
	"github.com/financely/financely/internal/advisor"
)

func newAdviseCommand() *cobra.Command {
	var snapshotPath string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "advise <message>",
		Short: "Ask a question about your finances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			snap, err := ws.loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			adv, err := ws.newAdvisor()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("timeout") {
				timeout = ws.cfg.AI.Timeout
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			message := strings.Join(args, " ")
			answer := adv.Advise(ctx, snap, message)

			if err := advicelog.Append(ws.dir, []advicelog.Entry{advicelog.NewEntry(time.Now(), message, answer)}); err != nil {
				return fmt.Errorf("recording advice: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer.Text)
			if answer.Mode == advisor.ModeFallback {
				fmt.Fprintln(cmd.ErrOrStderr(), "(offline answer)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "read this snapshot file instead of the workspace")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "deadline for the live answer (default from config)")

	return cmd
}
