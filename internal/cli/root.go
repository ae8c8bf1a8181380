package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/gogify/internal/catalog"
	"github.com/steviee/gogify/internal/config"
	"github.com/steviee/gogify/internal/output"
	"github.com/steviee/gogify/internal/platform"
)

// EnvPrefix prefixes every environment variable read by gogify.
const EnvPrefix = "GOGIFY"

// Options are the fully resolved settings of one run.
type Options struct {
	Term          string
	Output        output.Format
	Platform      catalog.Filter
	Timeout       time.Duration
	HumanReadable bool
	Suppress      bool
	API           config.APIConfig
}

// app holds the flag targets and resolved state of one command invocation.
type app struct {
	build VersionInfo

	// Flag targets
	cfgFile       string
	verbose       bool
	humanReadable bool
	suppress      bool
	format        output.Format
	filter        catalog.Filter
	timeout       positiveSeconds

	v    *viper.Viper
	opts Options

	detectHost func() (platform.Tag, error)
}

func newApp(build VersionInfo) *app {
	return &app{
		build:      build,
		format:     output.Table,
		timeout:    positiveSeconds(config.DefaultTimeoutSeconds),
		v:          viper.New(),
		detectHost: platform.Host,
	}
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	return newApp(VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		BuiltBy: builtBy,
	}).command()
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gogify [flags] appname [terms...]",
		Short: "Dump available product versions from GOG",
		Long: `gogify searches the GOG catalog for a product and lists the installers
available for every match: version, platform, language and size.

By default only installers for the platform gogify runs on are shown.
Use -p to pick another platform, or -p all to list every installer.

Every flag can also be set through a GOGIFY_<FLAG> environment variable
or in the defaults section of ~/.config/gogify/config.yaml.`,
		Example: `  # List installers for your platform
  gogify witcher 3

  # All Linux installers with human-readable sizes
  gogify -p linux -h "baldur's gate"

  # Machine-readable output for scripting
  gogify -o json -p all cyberpunk

  # Exit status only
  gogify -s stardew valley && echo available`,
		Version:       a.build.Version,
		Args:          requireSearchTerm,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}

			if err := a.resolve(args); err != nil {
				return err
			}

			initLogger(cmd.ErrOrStderr(), a.verbose || a.v.GetBool("verbose"), a.opts.Suppress)
			slog.Debug("starting gogify", "build", a.build, "term", a.opts.Term)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := rootCmd.Flags()
	flags.SortFlags = false

	// -h is taken by --human-readable, so --help has no shorthand.
	flags.Bool("help", false, "show this help message and exit")
	flags.BoolVarP(&a.humanReadable, "human-readable", "h", false, "show file sizes in human-readable format")
	flags.VarP(&a.format, "output", "o", "output format: "+strings.Join(output.FormatChoices, ", "))
	flags.VarP(&a.filter, "platform", "p", "only show versions for a given platform: "+strings.Join(catalog.FilterChoices, ", "))
	flags.BoolVarP(&a.suppress, "suppress", "s", false, "suppress errors if search returns no results")
	flags.VarP(&a.timeout, "timeout", "t", "number of seconds to wait for a connection before timeout")
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ~/.config/gogify/config.yaml)")
	flags.BoolVar(&a.verbose, "verbose", false, "enable debug logging on stderr")

	return rootCmd
}

// requireSearchTerm rejects invocations without an application name.
func requireSearchTerm(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &UsageError{Err: errors.New("the following arguments are required: appname")}
	}
	return nil
}

// searchTerm joins the positional arguments, dropping empty ones.
func searchTerm(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "" {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

// initConfig loads the config file and layers env variables and flags over it.
func (a *app) initConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgFile
	if cfgFile == "" {
		cfgFile = os.Getenv(EnvPrefix + "_CONFIG")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	a.v.SetDefault("api.search_url", cfg.API.SearchURL)
	a.v.SetDefault("api.product_url", cfg.API.ProductURL)
	a.v.SetDefault("api.user_agent", cfg.API.UserAgent)
	a.v.SetDefault("api.requests_per_second", cfg.API.RequestsPerSecond)
	a.v.SetDefault("output", cfg.Defaults.Output)
	a.v.SetDefault("platform", cfg.Defaults.Platform)
	a.v.SetDefault("timeout", cfg.Defaults.Timeout)
	a.v.SetDefault("human-readable", cfg.Defaults.HumanReadable)
	a.v.SetDefault("suppress", cfg.Defaults.Suppress)

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

// resolve turns arguments, flags, env and config into Options.
func (a *app) resolve(args []string) error {
	a.opts.Suppress = a.v.GetBool("suppress")
	a.opts.HumanReadable = a.v.GetBool("human-readable")

	a.opts.Term = searchTerm(args)
	if a.opts.Term == "" {
		return &UsageError{Err: errors.New("the following arguments are required: appname")}
	}

	format, err := output.ParseFormat(a.v.GetString("output"))
	if err != nil {
		return &UsageError{Err: err}
	}
	a.opts.Output = format

	filter, err := catalog.ParseFilter(a.v.GetString("platform"))
	if err != nil {
		return &UsageError{Err: err}
	}
	a.opts.Platform = filter

	timeout, err := CheckPositive(a.v.GetString("timeout"))
	if err != nil {
		return &UsageError{Err: fmt.Errorf("timeout: %w", err)}
	}
	a.opts.Timeout = time.Duration(timeout) * time.Second

	a.opts.API = config.APIConfig{
		SearchURL:         a.v.GetString("api.search_url"),
		ProductURL:        a.v.GetString("api.product_url"),
		UserAgent:         a.v.GetString("api.user_agent"),
		RequestsPerSecond: a.v.GetInt("api.requests_per_second"),
	}
	if a.opts.API.RequestsPerSecond < 0 {
		return &UsageError{Err: fmt.Errorf("api.requests_per_second must not be negative, got %d", a.opts.API.RequestsPerSecond)}
	}

	return nil
}

// Execute runs gogify with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, build VersionInfo) int {
	return newApp(build).execute(ctx, args, stdout, stderr)
}

func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	return a.report(err, stdout, stderr)
}

// report prints the diagnostic for err and returns the exit code.
func (a *app) report(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\nRun 'gogify --help' for usage.\n", usageErr.Err)
		return ExitUsage
	}

	slog.Debug("command failed", "error", err)

	if a.opts.Suppress {
		return ExitFailure
	}

	if lines := diagnose(err, a.opts); len(lines) > 0 {
		for _, line := range lines {
			_, _ = fmt.Fprintln(stdout, line)
		}
		return ExitFailure
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}
