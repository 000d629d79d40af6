package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newman-bot/mlpreco/pkg/pricing"
)

func TiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show the built-in pricing tier tables",
		Run: func(cmd *cobra.Command, args []string) {
			showTiers()
		},
	}
}

func showTiers() {
	for i, cond := range []pricing.Condition{pricing.New, pricing.Used} {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n", cond.Title())
		fmt.Printf("==============\n")
		for _, t := range pricing.TiersFor(cond) {
			fmt.Printf("%-40s %sx\n", t.Label, t.Multiplier)
		}
	}
}
