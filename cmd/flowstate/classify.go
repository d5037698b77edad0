package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/biz"
	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/repo"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
	"github.com/flowstate-live/flowstate/internal/cli"
	"github.com/flowstate-live/flowstate/internal/data"
	"github.com/flowstate-live/flowstate/internal/infra/openai"
)

func newClassifyCmd() *cobra.Command {
	var (
		author string
		useLLM bool
	)

	cmd := &cobra.Command{
		Use:   "classify [message...]",
		Short: "Classify messages offline (reads stdin lines when no message is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			if len(args) > 0 {
				lines = []string{strings.Join(args, " ")}
			} else {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			var completion repo.CompletionRepo
			if useLLM {
				baseURL, apiKey, model := cfg.LLM.Endpoint()
				completion = data.NewCompletionRepo(openai.NewClient(baseURL, apiKey, model))
			}
			c := newOfflineClassifier(completion)

			out := cmd.OutOrStdout()
			for _, line := range lines {
				msg, verdict := c.classify(cmd.Context(), author, line)
				fmt.Fprintln(out, cli.FormatMessage(msg))
				fmt.Fprintf(out, "  %s\n", verdict)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "cli", "author name used for per-author spam history")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "also run spam escalation and vibe classification against the configured model")
	return cmd
}

// offlineClassifier runs the live classification path against local input.
// All lines share one session so duplicate and rapid-fire rules apply across them.
type offlineClassifier struct {
	classifier *usecase.ClassifierUsecase
	escalator  *usecase.SpamEscalator
	vibe       *usecase.VibeClassifier
	state      *domain.SessionState
}

func newOfflineClassifier(completion repo.CompletionRepo) *offlineClassifier {
	session := cfg.Pipeline.ToSessionConfig()
	uc := biz.NewUsecases(completion, cfg.Spam.ToSpamConfig(), cfg.ToPromptConfig(), session.VibeBatchSize)
	return &offlineClassifier{
		classifier: uc.Classifier,
		escalator:  uc.Escalator,
		vibe:       uc.Vibe,
		state:      domain.NewSessionState("offline", session),
	}
}

func (c *offlineClassifier) classify(ctx context.Context, author, text string) (*domain.ClassifiedMessage, string) {
	raw := &domain.RawMessage{Author: author, Text: text, PublishedAt: time.Now()}
	msg := c.classifier.Classify(raw, c.state)
	verdict := cli.FormatVerdict(msg.Spam)

	if !msg.Spam.IsSpam && c.classifier.NeedsEscalation(msg) && c.escalator.IsEnabled() {
		if c.escalator.IsSpam(ctx, msg.Text) {
			return msg, verdict + " " + cli.ErrStyle.Render("→ spam (model)")
		}
		verdict += " " + cli.OkStyle.Render("→ kept (model)")
	}

	if !msg.Spam.IsSpam && c.vibe.IsEnabled() {
		msg = msg.WithVibe(c.vibe.ClassifyOne(ctx, msg.Text))
	}
	return msg, verdict
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
