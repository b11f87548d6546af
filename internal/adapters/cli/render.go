package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Renderer は結果行を表形式で出力します。
type Renderer interface {
	Render(header []string, rows [][]string)
}

// TableRenderer は go-pretty を利用した Renderer です。
type TableRenderer struct {
	out io.Writer
}

// NewTableRenderer は out に表を書き出す TableRenderer を生成します。
func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

// Render implements Renderer.
func (r *TableRenderer) Render(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(toRow(header))
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}

	t.Render()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
