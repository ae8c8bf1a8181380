package catalog

import "errors"

var (
	// ErrNoProducts is returned when the search finds no product or no installer.
	ErrNoProducts = errors.New("no installable products found")

	// ErrNoMatchingPlatform is returned when installers exist but none match the platform filter.
	ErrNoMatchingPlatform = errors.New("no installers for platform")
)
