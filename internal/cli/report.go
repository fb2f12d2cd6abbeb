package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/pkg/risk"
	"github.com/chainscope/chainscope/pkg/trace"
)

// reportOpts holds the command-line flags for the report command.
type reportOpts struct {
	chain   string
	backend string
}

// newReportCmd creates the report command. It fetches a compliance report
// for an address and prints it to the terminal.
func newReportCmd() *cobra.Command {
	opts := reportOpts{chain: "ethereum"}

	cmd := &cobra.Command{
		Use:   "report [address]",
		Short: "Fetch a compliance report for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chain, "chain", "c", opts.chain, "blockchain to report on")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "trace service URL (overrides config)")

	return cmd
}

func runReport(ctx context.Context, address string, opts *reportOpts) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.backend != "" {
		cfg.BackendURL = opts.backend
	}

	client, err := newTracerClient(cfg, true)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching report for %s...", trace.ElideAddress(address)))
	spinner.Start()

	report, err := client.FetchReport(ctx, opts.chain, address)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Report failed: %v", err))
		return err
	}
	spinner.Stop()

	tier := risk.Classify(report.RiskScore)

	printNewline()
	fmt.Println(StyleTitle.Render("Compliance Report"))
	printNewline()
	printKeyValue("Address", report.Address)
	printKeyValue("Chain", report.Chain)
	printKeyValue("Risk", tierBadge(tier)+StyleDim.Render(fmt.Sprintf(" (score %.1f)", report.RiskScore)))
	if report.Summary != "" {
		printKeyValue("Summary", report.Summary)
	}
	if report.Details.Recommendation != "" {
		printKeyValue("Action", report.Details.Recommendation)
	}
	if !report.GeneratedAt.IsZero() {
		printKeyValue("Generated", report.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}
	printNewline()

	return nil
}
