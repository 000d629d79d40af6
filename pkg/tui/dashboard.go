package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/newman-bot/mlpreco/pkg/pricing"
	"github.com/newman-bot/mlpreco/pkg/report"
)

type ReportData struct {
	Product string
	Rows    []pricing.Row
}

// ShowDashboard opens an interactive view of the computed price rows:
// an overview page plus one table per product condition.
func ShowDashboard(data ReportData) {
	app := tview.NewApplication()
	pages := tview.NewPages()

	newRows := filterRows(data.Rows, pricing.New)
	usedRows := filterRows(data.Rows, pricing.Used)

	// ========== OVERVIEW VIEW ==========
	overview := tview.NewFlex().SetDirection(tview.FlexRow)

	overview.AddItem(tview.NewTextView().
		SetText("OVERVIEW"), 1, 0, false)

	overviewText := fmt.Sprintf(`
mlpreco - Marketplace Price Optimizer

Produto: %s
-------------------------------------
Faixas para produto novo:  %d
Faixas para produto usado: %d

Commands:
[ESC] Quit  [1] Overview  [2] Produto Novo  [3] Produto Usado
`, data.Product, len(newRows), len(usedRows))

	overview.AddItem(tview.NewTextView().SetText(overviewText), 0, 1, false)

	// ========== CONDITION VIEWS ==========
	newView := conditionView(pricing.New, newRows)
	usedView := conditionView(pricing.Used, usedRows)

	// Add pages
	pages.AddPage("1", overview, true, true)
	pages.AddPage("2", newView, true, false)
	pages.AddPage("3", usedView, true, false)

	container := tview.NewFlex().SetDirection(tview.FlexRow)
	container.AddItem(pages, 0, 1, true)

	container.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			app.Stop()
		case tcell.KeyF1:
			pages.SwitchToPage("1")
		case tcell.KeyF2:
			pages.SwitchToPage("2")
		case tcell.KeyF3:
			pages.SwitchToPage("3")
		}
		switch string(event.Rune()) {
		case "1":
			pages.SwitchToPage("1")
		case "2":
			pages.SwitchToPage("2")
		case "3":
			pages.SwitchToPage("3")
		}
		return event
	})

	if err := app.SetRoot(container, true).Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
	}
}

func conditionView(cond pricing.Condition, rows []pricing.Row) *tview.Flex {
	view := tview.NewFlex().SetDirection(tview.FlexRow)
	view.AddItem(tview.NewTextView().
		SetText(cond.Title()), 1, 0, false)

	table := tview.NewTable().SetBorders(true)
	headers := []string{"Categoria", "Multiplicador", "Preço Otimizado"}
	for i, h := range headers {
		c := tview.NewTableCell(h).SetAlign(tview.AlignCenter)
		table.SetCell(0, i, c)
	}

	for i, r := range rows {
		row := i + 1
		table.SetCell(row, 0, tview.NewTableCell(r.Label).SetAlign(tview.AlignLeft))
		table.SetCell(row, 1, tview.NewTableCell(r.Multiplier.StringFixed(2)).SetAlign(tview.AlignRight))
		table.SetCell(row, 2, tview.NewTableCell(report.FormatMoney(r.Optimized)).SetAlign(tview.AlignRight))
	}

	view.AddItem(table, 0, 1, false)
	view.AddItem(tview.NewTextView().SetText("\n [ESC] Quit  [1] Overview  [2] Produto Novo  [3] Produto Usado"), 1, 0, false)
	return view
}

func filterRows(rows []pricing.Row, cond pricing.Condition) []pricing.Row {
	var out []pricing.Row
	for _, r := range rows {
		if r.Condition == cond {
			out = append(out, r)
		}
	}
	return out
}
