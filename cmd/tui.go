package cmd

import (
	"github.com/spf13/cobra"

	"github.com/newman-bot/mlpreco/pkg/input"
	"github.com/newman-bot/mlpreco/pkg/pricing"
	"github.com/newman-bot/mlpreco/pkg/tui"
)

func TuiCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tui [input_path]",
		Short: "Open interactive dashboard for the computed prices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reloadConfig(configPath); err != nil {
				return err
			}
			return runTui(args)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config.yaml")

	return cmd
}

func runTui(args []string) error {
	path, err := resolveInputPath(args)
	if err != nil {
		return err
	}

	product, err := input.Read(path)
	if err != nil {
		return err
	}

	rows := pricing.ComputeRows(product.NewPrice, product.UsedPrice)

	tui.ShowDashboard(tui.ReportData{
		Product: product.Name,
		Rows:    rows,
	})
	return nil
}
