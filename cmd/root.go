// Package cmd defines the CLI commands for toolbox.
//
// Commands are not attached to the root directly. Each command file registers
// its *cobra.Command with cmdregistry under a group and name, and Execute
// attaches everything in the registry once the user config is loaded.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/donaldgifford/toolbox/internal/bootstrap"
	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/config"
	"github.com/donaldgifford/toolbox/internal/ui"
)

var (
	verbose bool
	noColor bool
	cfgFile string
)

var (
	attachOnce sync.Once
	attachErr  error

	activeConfig     = &config.GlobalConfig{}
	activeConfigPath string
)

// rootCmd is the base command for the toolbox CLI.
var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "A collection of grouped developer commands",
	Long: `Toolbox bundles small developer commands into named groups. Groups can be
renamed, hidden or trimmed from the user config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/toolbox/config.yaml)")
}

// Execute runs the root command with the process arguments and reports any
// error on stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := ExecuteArgs(ctx, os.Args[1:])
	if err != nil {
		newWriter(rootCmd).Error(err)
	}

	return err
}

// ExecuteArgs loads the config named by args, attaches the registered
// commands on first use and runs the root command with args.
func ExecuteArgs(ctx context.Context, args []string) error {
	scanEarlyFlags(args)

	activeConfigPath = config.ResolvePath(cfgFile)

	cfg, err := config.LoadGlobalConfig(activeConfigPath)
	if err != nil {
		return err
	}

	activeConfig = cfg
	initLogger(cfg, rootCmd.ErrOrStderr())

	attachOnce.Do(func() {
		_, attachErr = bootstrap.Attach(rootCmd, cmdregistry.Default(), &bootstrap.Opts{
			Config: cfg,
			Logger: slog.Default(),
		})
	})

	if attachErr != nil {
		return attachErr
	}

	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

// scanEarlyFlags reads the flags that must be known before cobra parses the
// command line: the config decides which commands exist.
func scanEarlyFlags(args []string) {
	fs := pflag.NewFlagSet("toolbox", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVarP(&verbose, "verbose", "v", false, "")
	fs.BoolVar(&noColor, "no-color", false, "")
	fs.StringVar(&cfgFile, "config", "", "")
	fs.BoolP("help", "h", false, "")

	// Anything cobra will reject is reported by cobra itself.
	_ = fs.Parse(args)
}

func initLogger(cfg *config.GlobalConfig, out io.Writer) {
	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func colorDisabled() bool {
	return noColor || os.Getenv("NO_COLOR") != ""
}

// newWriter returns a ui.Writer bound to the command's output streams.
func newWriter(c *cobra.Command) *ui.Writer {
	return ui.NewWriterWithOutputs(c.OutOrStdout(), c.ErrOrStderr(), colorDisabled())
}
