package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/steviee/gogify/internal/catalog"
	"github.com/steviee/gogify/internal/gog"
	"github.com/steviee/gogify/internal/output"
	"github.com/steviee/gogify/internal/platform"
)

// run executes the search pipeline and writes the rendered rows to stdout.
func (a *app) run(ctx context.Context, stdout io.Writer) error {
	var host platform.Tag
	if a.opts.Platform == catalog.FilterHost {
		detected, err := a.detectHost()
		if err != nil {
			return err
		}
		host = detected
		slog.Debug("detected host platform", "platform", host)
	}

	client := gog.NewClient(&gog.Config{
		SearchURL:         a.opts.API.SearchURL,
		ProductURL:        a.opts.API.ProductURL,
		Timeout:           a.opts.Timeout,
		UserAgent:         a.opts.API.UserAgent,
		RequestsPerSecond: a.opts.API.RequestsPerSecond,
	})

	rows, err := catalog.Collect(ctx, client, catalog.Query{
		Term:          a.opts.Term,
		Filter:        a.opts.Platform,
		Host:          host,
		HumanReadable: a.opts.HumanReadable,
	})
	if err != nil {
		return err
	}

	slog.Debug("rendering rows", "rows", len(rows), "format", a.opts.Output)

	if err := output.Render(stdout, rows, a.opts.Output); err != nil {
		return fmt.Errorf("render %s output: %w", a.opts.Output, err)
	}

	return nil
}
