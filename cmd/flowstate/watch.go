package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/cli"
)

func newWatchCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "watch <video-id-or-url>",
		Short: "Subscribe to a live chat and print classified events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hub, repos, err := newHub(ctx, cfg)
			if err != nil {
				return err
			}
			defer repos.Close()

			sub := newConsoleSubscriber(cmd.OutOrStdout(), showAll)
			res, err := hub.Registry.Subscribe(ctx, args[0], sub)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cli.Logo, cli.TitleStyle.Render("watching "+res.SessionID))

			select {
			case <-ctx.Done():
			case <-sub.Done():
			}

			hub.Registry.Unsubscribe(sub)
			if err := hub.Registry.Shutdown(context.Background()); err != nil {
				slog.Warn("pipeline shutdown failed", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "also print control events")
	return cmd
}

// consoleSubscriber prints events to a terminal. It finishes on the first
// error event, which is how a pipeline reports that it stopped.
type consoleSubscriber struct {
	out     io.Writer
	showAll bool

	mu   sync.Mutex
	once sync.Once
	done chan struct{}
}

func newConsoleSubscriber(out io.Writer, showAll bool) *consoleSubscriber {
	return &consoleSubscriber{out: out, showAll: showAll, done: make(chan struct{})}
}

func (c *consoleSubscriber) ID() string {
	return "console"
}

func (c *consoleSubscriber) Send(ctx context.Context, event *domain.Event) error {
	switch event.Type {
	case domain.EventConnected, domain.EventSubscribed, domain.EventUnsubscribed:
		if !c.showAll {
			return nil
		}
	}

	line := cli.FormatEvent(event)
	if line != "" {
		c.mu.Lock()
		fmt.Fprintln(c.out, line)
		c.mu.Unlock()
	}

	if event.Type == domain.EventError {
		c.once.Do(func() { close(c.done) })
	}
	return nil
}

// Done is closed once the watched session reports an error
func (c *consoleSubscriber) Done() <-chan struct{} {
	return c.done
}
