package cli

import (
	"log/slog"
)

// VersionInfo contains version information for the application
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
}

// versionTemplate renders the output of --version, e.g. "gogify - v1.0.0".
const versionTemplate = "{{.Name}} - v{{.Version}}\n"

// LogValue implements slog.LogValuer.
func (v VersionInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", v.Version),
		slog.String("commit", v.Commit),
		slog.String("date", v.Date),
		slog.String("built_by", v.BuiltBy),
	)
}
