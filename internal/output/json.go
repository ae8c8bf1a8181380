package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/steviee/gogify/internal/catalog"
)

// Document is the JSON output shape.
type Document struct {
	Products []Product `json:"products"`
}

// Product is one row in JSON output. Size is a number or a string.
type Product struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Platform string `json:"platform"`
	Lang     string `json:"lang"`
	Size     any    `json:"size"`
}

func renderJSON(w io.Writer, rows []catalog.Row) error {
	doc := Document{Products: make([]Product, len(rows))}
	for i, row := range rows {
		doc.Products[i] = Product{
			Name:     row.Name,
			Version:  row.Version,
			Platform: row.Platform,
			Lang:     row.Lang,
			Size:     row.Size.Value(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}
