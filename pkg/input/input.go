package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is the parsed content of an input file: a display name and the two
// base prices an optimization run starts from.
type Product struct {
	Name      string
	NewPrice  decimal.Decimal
	UsedPrice decimal.Decimal
}

// Read loads an input file of 3 non-empty lines (product name, new price,
// used price) and returns the parsed product.
//
// It returns a *FormatError when the file is incomplete or a price does not
// parse, and a *ValidationError when a price is zero or negative.
func Read(path string) (Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Product{}, fmt.Errorf("read input file: %w", err)
	}

	var lines []string
	for _, ln := range strings.Split(string(data), "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) < 3 {
		return Product{}, &FormatError{
			Path:   path,
			Reason: "expected 3 non-empty lines: product name, new price, used price",
		}
	}

	newPrice, err := ParsePrice(lines[1])
	if err != nil {
		return Product{}, &FormatError{Path: path, Reason: fmt.Sprintf("new price %q: %v", lines[1], err)}
	}
	usedPrice, err := ParsePrice(lines[2])
	if err != nil {
		return Product{}, &FormatError{Path: path, Reason: fmt.Sprintf("used price %q: %v", lines[2], err)}
	}

	if !newPrice.IsPositive() {
		return Product{}, &ValidationError{Path: path, Reason: fmt.Sprintf("new price must be positive, got %s", newPrice)}
	}
	if !usedPrice.IsPositive() {
		return Product{}, &ValidationError{Path: path, Reason: fmt.Sprintf("used price must be positive, got %s", usedPrice)}
	}

	return Product{Name: lines[0], NewPrice: newPrice, UsedPrice: usedPrice}, nil
}

// ParsePrice parses a currency-formatted amount. An optional "R$" prefix and
// spaces are ignored. When both "." and "," appear, "." is treated as the
// thousands separator and "," as the decimal separator; when only ","
// appears it is the decimal separator.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")

	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}
