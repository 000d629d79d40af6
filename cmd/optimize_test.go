package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newman-bot/mlpreco/pkg/config"
	"github.com/newman-bot/mlpreco/pkg/input"
)

func writeProductFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "product")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write product file: %v", err)
	}
	return path
}

func TestRunOptimize_EndToEnd(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = prev })

	in := writeProductFile(t, "Widget X\n1000,00\n500,00\n")
	outDir := filepath.Join(t.TempDir(), "out")

	if err := runOptimize([]string{in}, outDir, false, false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	txt, err := os.ReadFile(filepath.Join(outDir, "preco_otimizado_Widget_X.txt"))
	if err != nil {
		t.Fatalf("read text report: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(txt), "\n"), "\n")

	if lines[0] != "Produto: Widget X" {
		t.Fatalf("expected product header, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[5], "Competitive") || !strings.HasSuffix(lines[5], "R$ 950,00") {
		t.Fatalf("unexpected first New row %q", lines[5])
	}
	usedStart := -1
	for i, ln := range lines {
		if ln == "Produto Usado" {
			usedStart = i
			break
		}
	}
	if usedStart < 0 {
		t.Fatalf("missing Used block in %q", string(txt))
	}
	firstUsed := lines[usedStart+3]
	if !strings.HasPrefix(firstUsed, "Very Competitive") || !strings.HasSuffix(firstUsed, "R$ 475,00") {
		t.Fatalf("unexpected first Used row %q", firstUsed)
	}

	if _, err := os.Stat(filepath.Join(outDir, "preco_otimizado_Widget_X.png")); err != nil {
		t.Fatalf("expected png report: %v", err)
	}
}

func TestRunOptimize_SkipWriters(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = prev })

	in := writeProductFile(t, "Widget X\n1000,00\n500,00\n")
	outDir := filepath.Join(t.TempDir(), "out")

	if err := runOptimize([]string{in}, outDir, true, true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("expected no output dir when both writers are skipped")
	}
}

func TestRunOptimize_TooFewLines(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = prev })

	in := writeProductFile(t, "Widget X\n1000,00\n")
	outDir := filepath.Join(t.TempDir(), "out")

	err := runOptimize([]string{in}, outDir, false, false)
	var fe *input.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Fatalf("no output must be written on error")
	}
}

func TestRunOptimize_NonPositivePrice(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = prev })

	in := writeProductFile(t, "Widget X\n0\n500,00\n")

	err := runOptimize([]string{in}, filepath.Join(t.TempDir(), "out"), false, false)
	var ve *input.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestResolveInputPath_MissingDefault(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	cfg.Input.DefaultPath = filepath.Join(t.TempDir(), "nope")
	t.Cleanup(func() { cfg = prev })

	if _, err := resolveInputPath(nil); err == nil {
		t.Fatalf("expected error for missing default input path")
	}
}

func TestResolveInputPath_ArgWins(t *testing.T) {
	prev := cfg
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = prev })

	got, err := resolveInputPath([]string{"somewhere/product"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "somewhere/product" {
		t.Fatalf("expected arg path, got %q", got)
	}
}

func TestReloadConfig(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  dir: elsewhere\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := reloadConfig(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Output.Dir != "elsewhere" {
		t.Fatalf("expected reloaded output dir, got %q", cfg.Output.Dir)
	}

	if err := reloadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}
