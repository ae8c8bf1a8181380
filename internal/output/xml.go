package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/steviee/gogify/internal/catalog"
)

type xmlProducts struct {
	XMLName  xml.Name     `xml:"products"`
	Products []xmlProduct `xml:"product"`
}

type xmlProduct struct {
	Name     string `xml:"name"`
	Version  string `xml:"version"`
	Platform string `xml:"platform"`
	Lang     string `xml:"lang"`
	Size     string `xml:"size"`
}

func renderXML(w io.Writer, rows []catalog.Row) error {
	doc := xmlProducts{Products: make([]xmlProduct, len(rows))}
	for i, row := range rows {
		doc.Products[i] = xmlProduct{
			Name:     row.Name,
			Version:  row.Version,
			Platform: row.Platform,
			Lang:     row.Lang,
			Size:     row.Size.String(),
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write XML header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode XML output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush XML output: %w", err)
	}

	return writeLines(w, "")
}
