package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
}

type InputConfig struct {
	DefaultPath string `yaml:"default_path"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

type RenderConfig struct {
	FontSizePt      float64 `yaml:"font_size_pt"`
	LineHeight      float64 `yaml:"line_height"`
	PaddingIn       float64 `yaml:"padding_in"` // inches, each side
	DPI             int     `yaml:"dpi"`
	CharWidthFactor float64 `yaml:"char_width_factor"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := *DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	def := DefaultConfig()
	if cfg.Input.DefaultPath == "" {
		cfg.Input.DefaultPath = def.Input.DefaultPath
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = def.Output.Prefix
	}
	if cfg.Render.FontSizePt <= 0 {
		cfg.Render.FontSizePt = def.Render.FontSizePt
	}
	if cfg.Render.LineHeight <= 0 {
		cfg.Render.LineHeight = def.Render.LineHeight
	}
	if cfg.Render.PaddingIn < 0 {
		cfg.Render.PaddingIn = def.Render.PaddingIn
	}
	if cfg.Render.DPI <= 0 {
		cfg.Render.DPI = def.Render.DPI
	}
	if cfg.Render.CharWidthFactor <= 0 {
		cfg.Render.CharWidthFactor = def.Render.CharWidthFactor
	}

	return &cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			DefaultPath: "input/product",
		},
		Output: OutputConfig{
			Dir:    "output",
			Prefix: "preco_otimizado",
		},
		Render: RenderConfig{
			FontSizePt:      12,
			LineHeight:      1.10,
			PaddingIn:       0.35,
			DPI:             200,
			CharWidthFactor: 0.60,
		},
	}
}
