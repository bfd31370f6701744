package main

import (
	"os"
	"time"

	"github.com/rick-stevens-ai/Sophia-tools/internal/runner"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		prompt        string
		model         string
		all           bool
		brief         bool
		verbose       bool
		displayLength int
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send a prompt to one model, or sweep all active models",
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := newToolkit(verbose)
			if err != nil {
				return err
			}

			if timeout == 0 {
				timeout = tk.cfg.API.Timeout
			}
			svc := runner.NewService(tk.client, tk.status, tk.diag, tk.cfg.API.Host, timeout)

			if all {
				return svc.RunAll(cmd.Context(), prompt,
					runner.Options{DisplayLength: displayLength, Brief: brief}, os.Stdout)
			}
			return svc.RunOne(cmd.Context(), model, prompt, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p",
		"Explain quantum computing in simple terms.",
		"Prompt text to send to each model")
	cmd.Flags().StringVarP(&model, "model", "m",
		"meta-llama/Meta-Llama-3.1-8B-Instruct",
		"Model to use")
	cmd.Flags().BoolVarP(&all, "all", "a", false,
		"Sweep every currently-active model instead of one")
	cmd.Flags().IntVarP(&displayLength, "displaylength", "d", 80,
		"Number of characters to display from each model's response")
	cmd.Flags().BoolVarP(&brief, "brief", "b", false,
		"Do not show responses")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0,
		"Per-request timeout (defaults to SOPHIA_HTTP_TIMEOUT)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")

	return cmd
}
