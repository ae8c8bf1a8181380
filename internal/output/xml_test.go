package output

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/gogify/internal/catalog"
)

func TestRenderXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderXML(&buf, sampleRows()[:1]))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<products>
  <product>
    <name>The Witcher 3</name>
    <version>4.04</version>
    <platform>linux</platform>
    <lang>en</lang>
    <size>943718400</size>
  </product>
</products>
`
	assert.Equal(t, want, buf.String())
}

func TestRenderXML_Escapes(t *testing.T) {
	rows := []catalog.Row{{Name: "Tom & Jerry <Deluxe>", Version: "1", Platform: "linux", Lang: "en", Size: catalog.Unknown()}}

	var buf bytes.Buffer
	require.NoError(t, renderXML(&buf, rows))

	assert.Contains(t, buf.String(), "<name>Tom &amp; Jerry &lt;Deluxe&gt;</name>")

	var decoded xmlProducts
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Products, 1)
	assert.Equal(t, "Tom & Jerry <Deluxe>", decoded.Products[0].Name)
	assert.Equal(t, "?", decoded.Products[0].Size)
}
