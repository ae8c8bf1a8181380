package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/steviee/gogify/internal/catalog"
)

func renderCSV(w io.Writer, rows []catalog.Row) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers(), ","))

	for _, row := range rows {
		cells := row.Cells()
		values := make([]string, len(cells))
		for i, c := range cells {
			values[i] = strint(c.Value)
		}
		lines = append(lines, strings.Join(values, ","))
	}

	return writeLines(w, lines...)
}

// strint renders integer-valued cells as bare digits and quotes everything else.
func strint(v any) string {
	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return strconv.FormatInt(n, 10)
		}
		return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
	}
	return `""`
}
