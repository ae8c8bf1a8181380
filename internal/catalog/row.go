package catalog

import (
	"strings"

	"github.com/steviee/gogify/internal/gog"
)

// Placeholder stands in for any field an installer record lacks.
const Placeholder = "?"

// Field names in output order.
const (
	FieldName     = "name"
	FieldVersion  = "version"
	FieldPlatform = "platform"
	FieldLang     = "lang"
	FieldSize     = "size"
)

// Fields lists the row fields in output order.
var Fields = []string{FieldName, FieldVersion, FieldPlatform, FieldLang, FieldSize}

// Row is the projection of one installer record.
type Row struct {
	Name     string
	Version  string
	Platform string
	Lang     string
	Size     Size
}

// Cell is one field of a row.
// Value holds a string or an int64.
type Cell struct {
	Field string
	Value any
}

// Cells returns the row's fields in output order.
func (r Row) Cells() []Cell {
	return []Cell{
		{Field: FieldName, Value: r.Name},
		{Field: FieldVersion, Value: r.Version},
		{Field: FieldPlatform, Value: r.Platform},
		{Field: FieldLang, Value: r.Lang},
		{Field: FieldSize, Value: r.Size.Value()},
	}
}

// NewRow projects an installer record, defaulting missing fields to Placeholder.
func NewRow(in gog.Installer) Row {
	row := Row{
		Name:     stringOr(in.Name),
		Version:  stringOr(in.Version),
		Platform: stringOr(in.OS),
		Lang:     stringOr(in.Language),
		Size:     Unknown(),
	}
	if in.TotalSize != nil {
		row.Size = Bytes(*in.TotalSize)
	}
	return row
}

func stringOr(s *string) string {
	if s == nil {
		return Placeholder
	}
	return *s
}

// Compare orders rows by name, version, platform, lang and size.
func Compare(a, b Row) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Version, b.Version); c != 0 {
		return c
	}
	if c := strings.Compare(a.Platform, b.Platform); c != 0 {
		return c
	}
	if c := strings.Compare(a.Lang, b.Lang); c != 0 {
		return c
	}
	return a.Size.compare(b.Size)
}
