package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/steviee/gogify/internal/catalog"
)

var pipeEscaper = strings.NewReplacer("|", `\|`)

func renderPipe(w io.Writer, rows []catalog.Row) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers(), "|"))

	for _, row := range rows {
		cells := row.Cells()
		values := make([]string, len(cells))
		for i, c := range cells {
			values[i] = pipeEscaper.Replace(fmt.Sprint(c.Value))
		}
		lines = append(lines, strings.Join(values, "|"))
	}

	return writeLines(w, lines...)
}
