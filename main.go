package main

import (
	"fmt"
	"os"

	"github.com/newman-bot/mlpreco/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mlpreco",
	Short: "Optimize marketplace resale prices for a product",
	Long: `mlpreco reads a product file (name, new price, used price) and applies a
fixed table of discount tiers to suggest listing prices for new and used
condition.

The report is printed to the console and written as a .txt file and a .png
image under the output directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(cmd.OptimizeCmd())
	rootCmd.AddCommand(cmd.TiersCmd())
	rootCmd.AddCommand(cmd.TuiCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
