package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	oddStyle      = cellStyle.Foreground(dim)
	realtimeStyle = cellStyle.Foreground(green)
)

// Table renders rows with rounded borders. Rows whose kind column says
// realtime are highlighted.
func Table(headers []string, rows [][]string) string {
	kindCol := -1
	for i, h := range headers {
		if h == "KIND" {
			kindCol = i
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case kindCol >= 0 && row < len(rows) && rows[row][kindCol] == KindRealtime:
				return realtimeStyle
			case row%2 == 0:
				return cellStyle
			default:
				return oddStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}
