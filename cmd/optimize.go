package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newman-bot/mlpreco/pkg/config"
	"github.com/newman-bot/mlpreco/pkg/input"
	"github.com/newman-bot/mlpreco/pkg/pricing"
	"github.com/newman-bot/mlpreco/pkg/render"
	"github.com/newman-bot/mlpreco/pkg/report"
)

var cfg *config.Config

func init() {
	// Try to load config, fall back to defaults
	var err error
	cfg, err = config.Load("config.yaml")
	if err != nil {
		cfg = config.DefaultConfig()
	}
}

func OptimizeCmd() *cobra.Command {
	var outputDir string
	var configPath string
	var noTXT, noPNG bool

	cmd := &cobra.Command{
		Use:   "optimize [input_path]",
		Short: "Compute optimized resale prices and write the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reloadConfig(configPath); err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.Output.Dir
			}
			return runOptimize(args, outputDir, noTXT, noPNG)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for generated files (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config.yaml")
	cmd.Flags().BoolVar(&noTXT, "no-txt", false, "Skip writing the .txt report")
	cmd.Flags().BoolVar(&noPNG, "no-png", false, "Skip writing the .png report")

	return cmd
}

func runOptimize(args []string, outputDir string, noTXT, noPNG bool) error {
	path, err := resolveInputPath(args)
	if err != nil {
		return err
	}

	product, err := input.Read(path)
	if err != nil {
		return err
	}

	rows := pricing.ComputeRows(product.NewPrice, product.UsedPrice)
	lines := report.BuildLines(rows, product.Name)
	for _, ln := range lines {
		fmt.Println(ln)
	}

	if noTXT && noPNG {
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outputDir, err)
	}
	base := cfg.Output.Prefix + "_" + report.Slug(product.Name)

	var generated []string
	if !noTXT {
		txtPath := filepath.Join(outputDir, base+".txt")
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(txtPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write text report %s: %w", txtPath, err)
		}
		generated = append(generated, txtPath)
	}
	if !noPNG {
		pngPath := filepath.Join(outputDir, base+".png")
		if err := render.WritePNG(pngPath, lines, renderOptions()); err != nil {
			return fmt.Errorf("write image report %s: %w", pngPath, err)
		}
		generated = append(generated, pngPath)
	}

	fmt.Printf("\nArquivos gerados:\n")
	for _, p := range generated {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		fmt.Printf(" - %s\n", p)
	}

	return nil
}

// resolveInputPath prefers an explicit argument and falls back to the
// configured default path, which must exist.
func resolveInputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path := cfg.Input.DefaultPath
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input file not found; create %s or pass a path", path)
	}
	return path, nil
}

func reloadConfig(path string) error {
	if path == "" {
		return nil
	}
	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	cfg = loaded
	return nil
}

func renderOptions() render.Options {
	return render.Options{
		FontSizePt:      cfg.Render.FontSizePt,
		LineHeight:      cfg.Render.LineHeight,
		PaddingIn:       cfg.Render.PaddingIn,
		DPI:             cfg.Render.DPI,
		CharWidthFactor: cfg.Render.CharWidthFactor,
	}
}
