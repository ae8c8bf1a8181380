package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/platform"
)

// Fetcher is the subset of the GOG client used to collect installers.
type Fetcher interface {
	Search(ctx context.Context, term string) ([]int64, bool, error)
	Downloads(ctx context.Context, productID int64) ([]gog.Installer, bool, error)
}

// Query describes one lookup.
type Query struct {
	Term          string
	Filter        Filter
	Host          platform.Tag
	HumanReadable bool
}

// Collect searches for Term, gathers the installers of every match one product
// at a time and returns the filtered, sorted rows.
func Collect(ctx context.Context, f Fetcher, q Query) ([]Row, error) {
	ids, _, err := f.Search(ctx, q.Term)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Term, err)
	}
	if len(ids) == 0 {
		return nil, ErrNoProducts
	}

	var installers []gog.Installer
	for _, id := range ids {
		found, _, err := f.Downloads(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("inspect product %d: %w", id, err)
		}
		installers = append(installers, found...)
	}

	slog.Debug("collected installers",
		"term", q.Term,
		"products", len(ids),
		"installers", len(installers))

	if len(installers) == 0 {
		return nil, ErrNoProducts
	}

	rows := BuildRows(installers, q.Filter, q.Host, q.HumanReadable)
	if len(rows) == 0 {
		return nil, ErrNoMatchingPlatform
	}

	return rows, nil
}
