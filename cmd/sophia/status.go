package main

import (
	"os"

	"github.com/rick-stevens-ai/Sophia-tools/internal/render"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var (
		verbose  bool
		liveOnly bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check model availability and status",
		Long:  "Polls the inference gateway and renders a consolidated view of which model endpoints are configured, active, queued or stopped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := newToolkit(verbose)
			if err != nil {
				return err
			}

			tk.diag.Infof("Starting ALCF endpoint status check...")
			report, _, err := tk.status.Report(cmd.Context())
			if err != nil {
				tk.diag.Criticalf("Status check failed: %v", err)
				return err
			}

			render.New(os.Stdout, liveOnly).Summary(report)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging with detailed progress information")
	cmd.Flags().BoolVarP(&liveOnly, "live-only", "l", false,
		"Show only live/running models in the output")

	return cmd
}
