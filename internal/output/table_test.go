package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/gogify/internal/catalog"
)

func TestRenderTable(t *testing.T) {
	rows := []catalog.Row{
		{Name: "The Witcher 3", Version: "4.04", Platform: "linux", Lang: "en", Size: catalog.Bytes(943718400)},
		{Name: "The Witcher 3", Version: "4.04", Platform: "windows", Lang: "en", Size: catalog.Bytes(1288490189)},
	}

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, rows))

	want := "" +
		"NAME           VERSION  PLATFORM  LANG        SIZE\n" +
		"-------------  -------  --------  ----  ----------\n" +
		"The Witcher 3  4.04     linux     en     943718400\n" +
		"The Witcher 3  4.04     windows   en    1288490189\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTable_TextSizesAreLeftAligned(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, sampleRows()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasSuffix(lines[0], "SIZE"))
	assert.True(t, strings.HasSuffix(lines[2], "943718400"))
	assert.True(t, strings.HasSuffix(lines[3], "1.2GiB"))

	sizeColumn := strings.Index(lines[0], "SIZE")
	assert.Equal(t, sizeColumn, strings.Index(lines[3], "1.2GiB"))
}

func TestRenderTable_NoTrailingWhitespace(t *testing.T) {
	rows := []catalog.Row{{Name: "A", Version: "1", Platform: "linux", Lang: "en", Size: catalog.Text("?")}}

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, rows))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 2, 4, false))
	assert.Equal(t, "  ab", pad("ab", 2, 4, true))
	assert.Equal(t, "abcdef", pad("abcdef", 6, 4, false))
}
