package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/steviee/gogify/internal/catalog"
)

// Format is an output encoding.
type Format int

// Supported output formats. Table is the zero value and the default.
const (
	Table Format = iota
	CSV
	JSON
	Pipe
	XML
)

// FormatChoices are the names accepted on the command line.
var FormatChoices = []string{"csv", "json", "pipe", "table", "xml"}

var formatNames = map[Format]string{
	Table: "table",
	CSV:   "csv",
	JSON:  "json",
	Pipe:  "pipe",
	XML:   "xml",
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return Table, fmt.Errorf("invalid output format %q: must be one of %s", s, strings.Join(FormatChoices, ", "))
}

var _ pflag.Value = (*Format)(nil)

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f Format) Type() string {
	return "format"
}

// Render writes rows to w in format f.
func Render(w io.Writer, rows []catalog.Row, f Format) error {
	switch f {
	case Table:
		return renderTable(w, rows)
	case CSV:
		return renderCSV(w, rows)
	case JSON:
		return renderJSON(w, rows)
	case Pipe:
		return renderPipe(w, rows)
	case XML:
		return renderXML(w, rows)
	}
	return fmt.Errorf("unsupported output format %s", f)
}

// headers returns the upper-cased field names.
func headers() []string {
	out := make([]string, len(catalog.Fields))
	for i, field := range catalog.Fields {
		out[i] = strings.ToUpper(field)
	}
	return out
}

// writeLines writes each line followed by a newline.
func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
