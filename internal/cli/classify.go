package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/pkg/risk"
)

// newClassifyCmd creates the classify command. It maps a numeric risk
// score to its tier without contacting any service.
func newClassifyCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "classify [score]",
		Short: "Classify a numeric risk score into a tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid score: %q", args[0])
			}

			tier := risk.Classify(score)
			if quiet {
				fmt.Println(tier.Label())
				return nil
			}

			printKeyValue("Score", args[0])
			printKeyValue("Tier", tierBadge(tier))
			printKeyValue("Color", tier.Color())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the tier label")

	return cmd
}
