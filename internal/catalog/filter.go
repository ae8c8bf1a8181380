package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/platform"
)

// Filter selects which platforms end up in the result.
// The zero value means "the host platform".
type Filter string

const (
	FilterHost    Filter = ""
	FilterWindows Filter = "windows"
	FilterLinux   Filter = "linux"
	FilterMac     Filter = "mac"
	FilterAll     Filter = "all"
)

// FilterChoices are the values accepted on the command line.
var FilterChoices = []string{string(FilterWindows), string(FilterLinux), string(FilterMac), string(FilterAll)}

// ParseFilter validates a platform filter. An empty string yields FilterHost.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterHost, nil
	}
	if !slices.Contains(FilterChoices, s) {
		return "", fmt.Errorf("invalid platform %q: must be one of %s", s, strings.Join(FilterChoices, ", "))
	}
	return Filter(s), nil
}

var _ pflag.Value = (*Filter)(nil)

// String implements pflag.Value.
func (f *Filter) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Filter) Set(s string) error {
	parsed, err := ParseFilter(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Filter) Type() string {
	return "platform"
}

// Tag returns the installer platform tag the filter matches.
// It is empty for FilterHost and FilterAll.
func (f Filter) Tag() platform.Tag {
	switch f {
	case FilterWindows:
		return platform.Windows
	case FilterLinux:
		return platform.Linux
	case FilterMac:
		return platform.OSX
	}
	return ""
}

// Label names the filter in user-facing messages.
func (f Filter) Label() string {
	if f == FilterHost {
		return "your platform"
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Match reports whether an installer platform passes the filter.
func (f Filter) Match(installerPlatform string, host platform.Tag) bool {
	switch f {
	case FilterAll:
		return true
	case FilterHost:
		return host != "" && installerPlatform == string(host)
	}
	return installerPlatform == string(f.Tag())
}

// BuildRows projects, filters and sorts installer records.
func BuildRows(installers []gog.Installer, filter Filter, host platform.Tag, humanReadable bool) []Row {
	rows := make([]Row, 0, len(installers))
	for _, in := range installers {
		row := NewRow(in)
		if !filter.Match(row.Platform, host) {
			continue
		}
		if humanReadable {
			row.Size = row.Size.Humanize()
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, Compare)
	return rows
}
