package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// Tag is a canonical platform name as used by the GOG API.
type Tag string

// Canonical platform tags reported in installer records.
const (
	Windows Tag = "windows"
	Linux   Tag = "linux"
	OSX     Tag = "osx"
)

// ErrUnsupported is matched by every UnsupportedError.
var ErrUnsupported = errors.New("unsupported platform")

// UnsupportedError is returned when a platform value does not map to a Tag.
type UnsupportedError struct {
	Value string
}

// Error returns the error message.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported platform %q", e.Value)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// Host detects the platform of the running process.
func Host() (Tag, error) {
	return Detect(runtime.GOOS, "")
}

// Detect resolves a platform tag from a GOOS value and an optional user override.
// A non-empty override takes precedence and accepts "windows", "linux" or "mac".
func Detect(goos, override string) (Tag, error) {
	if override != "" {
		switch override {
		case "windows":
			return Windows, nil
		case "linux":
			return Linux, nil
		case "mac":
			return OSX, nil
		}
		return "", &UnsupportedError{Value: override}
	}

	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return OSX, nil
	}
	return "", &UnsupportedError{Value: goos}
}
