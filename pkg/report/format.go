package report

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/newman-bot/mlpreco/pkg/pricing"
)

const (
	headerLabel      = "Categoria"
	headerMultiplier = "Multiplicador"
	headerPrice      = "Preço Otimizado"
)

// FormatMoney renders a value as Brazilian reais: "R$ " prefix, dot
// thousands grouping, comma decimal separator, always 2 decimals.
// Negative values carry the minus inside the prefix: "R$ -1.234,50".
func FormatMoney(v decimal.Decimal) string {
	intPart, fracPart, _ := strings.Cut(v.Abs().StringFixed(2), ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if v.IsNegative() {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// BuildLines renders the full report: a product header, then one aligned
// block per condition (New first), separated by a blank line. The same
// lines feed the console, the text file and the image.
func BuildLines(rows []pricing.Row, product string) []string {
	lines := []string{"Produto: " + product, ""}
	for i, cond := range []pricing.Condition{pricing.New, pricing.Used} {
		var group []pricing.Row
		for _, r := range rows {
			if r.Condition == cond {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		lines = append(lines, formatBlock(cond.Title(), group)...)
		if i == 0 {
			lines = append(lines, "")
		}
	}
	return lines
}

// formatBlock renders one condition group: title, header, dash separator,
// then a row per tier. Column widths are the max of the header and every
// cell in that column; labels are left-aligned, numbers right-aligned.
func formatBlock(title string, group []pricing.Row) []string {
	labelW := utf8.RuneCountInString(headerLabel)
	multW := utf8.RuneCountInString(headerMultiplier)
	priceW := utf8.RuneCountInString(headerPrice)
	for _, r := range group {
		labelW = max(labelW, utf8.RuneCountInString(r.Label))
		multW = max(multW, utf8.RuneCountInString(r.Multiplier.StringFixed(2)))
		priceW = max(priceW, utf8.RuneCountInString(FormatMoney(r.Optimized)))
	}

	header := padRight(headerLabel, labelW) + "  " + padLeft(headerMultiplier, multW) + "  " + padLeft(headerPrice, priceW)
	lines := []string{title, header, strings.Repeat("-", utf8.RuneCountInString(header))}
	for _, r := range group {
		lines = append(lines,
			padRight(r.Label, labelW)+"  "+padLeft(r.Multiplier.StringFixed(2), multW)+"  "+padLeft(FormatMoney(r.Optimized), priceW))
	}
	return lines
}

func padLeft(s string, w int) string {
	if n := w - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, w int) string {
	if n := w - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
