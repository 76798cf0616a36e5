package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// newRecordTable builds a read-only table with a header row. Cells are
// truncated labels; widths sets each column's width.
func newRecordTable(headers []string, widths []float32, rows func() int, cell func(row, col int) string) *widget.Table {
	table := widget.NewTable(
		func() (int, int) { return rows(), len(headers) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(cell(id.Row, id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(headers) {
			obj.(*widget.Label).SetText(headers[id.Col])
		}
	}

	for col, width := range widths {
		table.SetColumnWidth(col, width)
	}
	return table
}
