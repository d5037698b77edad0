package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/api"
	"github.com/flowstate-live/flowstate/internal/cli"
)

func newStatusCmd() *cobra.Command {
	var (
		addr  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show live sessions and recent runs of a running backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
			}
			client := api.NewClient(addr)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			err := client.Health(ctx)
			fmt.Fprintf(out, "%s %s %s\n", cli.Logo, cli.TitleStyle.Render("flowstate"), cli.StatusBadge(err == nil))
			if err != nil {
				return fmt.Errorf("backend at %s is not reachable: %w", addr, err)
			}

			sessions, err := client.Sessions(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cli.BoldStyle.Render("Sessions"))
			if len(sessions) == 0 {
				fmt.Fprintln(out, cli.DimStyle.Render("  none"))
			}
			for _, s := range sessions {
				fmt.Fprintf(out, "  %s %-9s subs=%d received=%d dropped=%d up %s\n",
					s.SessionID, s.State, s.Subscribers, s.Stats.Received, s.Stats.Dropped,
					time.Since(s.StartedAt).Round(time.Second))
			}

			runs, err := client.Runs(ctx, limit)
			if err != nil {
				// archive disabled on the server
				fmt.Fprintln(out, cli.DimStyle.Render("runs unavailable: "+err.Error()))
				return nil
			}
			fmt.Fprintln(out, cli.BoldStyle.Render("Recent runs"))
			for _, r := range runs {
				reason := r.StopReason
				if r.Running() {
					reason = "running"
				}
				fmt.Fprintf(out, "  %s %s %-18s received=%d dropped=%d escalated=%d\n",
					r.StartedAt.Local().Format(time.DateTime), r.SessionID, reason,
					r.Stats.Received, r.Stats.Dropped, r.Stats.Escalated)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "backend base URL (default http://127.0.0.1:$PORT)")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of recent runs to show")
	return cmd
}
