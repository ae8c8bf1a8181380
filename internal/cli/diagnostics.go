package cli

import (
	"errors"
	"fmt"

	"github.com/steviee/gogify/internal/catalog"
	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/platform"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// diagnose returns the user-facing message for a known failure, or nil.
func diagnose(err error, opts Options) []string {
	var apiErr *gog.APIError
	var unsupported *platform.UnsupportedError

	switch {
	case errors.As(err, &apiErr):
		return []string{apiMessage(apiErr)}

	case errors.As(err, &unsupported):
		return []string{fmt.Sprintf("Unsupported platform %s!", unsupported.Value)}

	case errors.Is(err, catalog.ErrNoProducts),
		errors.Is(err, catalog.ErrNoMatchingPlatform) && opts.Platform == catalog.FilterAll:
		return []string{fmt.Sprintf("Could not find any installable products on GOG with search term %q.", opts.Term)}

	case errors.Is(err, catalog.ErrNoMatchingPlatform):
		return []string{
			fmt.Sprintf("Could not find any installable products on GOG for %s.", opts.Platform.Label()),
			"Try running again with -pall to search all platforms.",
		}
	}

	return nil
}

func apiMessage(err *gog.APIError) string {
	switch {
	case errors.Is(err, gog.ErrConnectivity):
		return fmt.Sprintf("Failed to connect to GOG API for %s.", err.Op)
	case errors.Is(err, gog.ErrTimeout):
		return fmt.Sprintf("Timeout occurred while trying to connect to GOG API for %s.", err.Op)
	case errors.Is(err, gog.ErrUnexpectedStatus):
		return fmt.Sprintf("GOG API returned unexpected status code %d for %s!", err.StatusCode, err.Op)
	case errors.Is(err, gog.ErrInvalidResponse):
		return fmt.Sprintf("GOG API returned a malformed response for %s.", err.Op)
	}
	return fmt.Sprintf("GOG API request failed for %s: %v", err.Op, err.Err)
}
