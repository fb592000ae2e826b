package plot

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSummary prints the plotted values as a table: one row per category, one column per panel.
func WriteSummary(fig Figure, w io.Writer) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)

	headers := []string{"Category"}
	for _, p := range fig.Panels {
		headers = append(headers, p.Title)
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(fig.Categories))
	for i, c := range fig.Categories {
		row := []string{c}
		for _, p := range fig.Panels {
			row = append(row, strconv.FormatFloat(p.Values[i], 'f', 2, 64))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
