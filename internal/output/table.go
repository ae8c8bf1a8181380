package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/steviee/gogify/internal/catalog"
)

// columnGap separates table columns.
const columnGap = "  "

func renderTable(w io.Writer, rows []catalog.Row) error {
	heads := headers()

	cells := make([][]string, len(rows))
	numeric := make([]bool, len(heads))
	for i := range numeric {
		numeric[i] = len(rows) > 0
	}

	for r, row := range rows {
		values := row.Cells()
		cells[r] = make([]string, len(values))
		for c, v := range values {
			if _, ok := v.Value.(int64); !ok {
				numeric[c] = false
			}
			cells[r][c] = fmt.Sprint(v.Value)
		}
	}

	// Calculate column widths
	widths := make([]int, len(heads))
	for c, h := range heads {
		widths[c] = lipgloss.Width(h)
	}
	for _, line := range cells {
		for c, v := range line {
			widths[c] = max(widths[c], lipgloss.Width(v))
		}
	}

	headerStyle := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	header := make([]string, len(heads))
	rule := make([]string, len(heads))
	for c, h := range heads {
		header[c] = pad(headerStyle.Render(h), lipgloss.Width(h), widths[c], numeric[c])
		rule[c] = strings.Repeat("-", widths[c])
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, joinColumns(header), joinColumns(rule))
	for _, line := range cells {
		padded := make([]string, len(line))
		for c, v := range line {
			padded[c] = pad(v, lipgloss.Width(v), widths[c], numeric[c])
		}
		lines = append(lines, joinColumns(padded))
	}

	return writeLines(w, lines...)
}

// pad aligns s, whose printable width is visible, to width columns.
func pad(s string, visible, width int, right bool) string {
	fill := strings.Repeat(" ", max(width-visible, 0))
	if right {
		return fill + s
	}
	return s + fill
}

func joinColumns(columns []string) string {
	return strings.TrimRight(strings.Join(columns, columnGap), " ")
}
