package catalog

import (
	"strconv"

	"github.com/docker/go-units"
)

// binaryAbbrs are the 1024-based units; values past ZiB all land in YiB.
var binaryAbbrs = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// FormatSize renders a byte count with binary prefixes and one decimal place,
// e.g. 0 -> "0.0B", 1536 -> "1.5KiB".
func FormatSize(n int64) string {
	return formatFloat(float64(n))
}

func formatFloat(n float64) string {
	return units.CustomSize("%.1f%s", n, 1024.0, binaryAbbrs)
}

// Size is the size cell of a row: either a byte count or text.
type Size struct {
	bytes  int64
	text   string
	isText bool
}

// Bytes returns a numeric size.
func Bytes(n int64) Size {
	return Size{bytes: n}
}

// Text returns a textual size such as "?" or "1.5KiB".
func Text(s string) Size {
	return Size{text: s, isText: true}
}

// Unknown is the size of an installer that reports none.
func Unknown() Size {
	return Text(Placeholder)
}

// Int returns the byte count and true when the size is numeric.
func (s Size) Int() (int64, bool) {
	return s.bytes, !s.isText
}

// Humanize converts a numeric size to its binary-prefixed text form.
func (s Size) Humanize() Size {
	if s.isText {
		return s
	}
	return Text(FormatSize(s.bytes))
}

// Value returns the size as int64 or string.
func (s Size) Value() any {
	if s.isText {
		return s.text
	}
	return s.bytes
}

func (s Size) String() string {
	if s.isText {
		return s.text
	}
	return strconv.FormatInt(s.bytes, 10)
}

// compare orders numeric sizes before textual ones.
func (s Size) compare(o Size) int {
	switch {
	case !s.isText && !o.isText:
		switch {
		case s.bytes < o.bytes:
			return -1
		case s.bytes > o.bytes:
			return 1
		}
		return 0
	case s.isText && o.isText:
		switch {
		case s.text < o.text:
			return -1
		case s.text > o.text:
			return 1
		}
		return 0
	case !s.isText:
		return -1
	default:
		return 1
	}
}
