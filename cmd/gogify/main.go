package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/steviee/gogify/internal/cli"
)

// Version information (set by ldflags during build)
var (
	Version   = "1.0.0"
	Commit    = "unknown"
	BuildTime = "unknown"
	BuiltBy   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.VersionInfo{
		Version: Version,
		Commit:  Commit,
		Date:    BuildTime,
		BuiltBy: BuiltBy,
	})

	stop()
	os.Exit(code)
}
