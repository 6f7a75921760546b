package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	vanityrecon "github.com/kataras/vanity-recon"
	"github.com/kataras/vanity-recon/pkg/config"
	"github.com/kataras/vanity-recon/pkg/twilio"
	"github.com/kataras/vanity-recon/pkg/watchlist"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = twilio.Version

type cliOptions struct {
	envFile       string
	configFile    string
	watchlistFile string
	outputFile    string
	logJSON       bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code: 0 once the report is
// printed, whatever the individual lookups returned, and 1 when the run could
// not start.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed)
		if errors.Is(err, vanityrecon.ErrMissingCredentials) {
			red.Fprintf(stderr, "\n[ERROR] %v\n\n", err)
		} else {
			red.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "vanity-recon",
		Short:         "Check vanity phone number availability on Twilio",
		Long:          "A tool to check whether vanity phone numbers and exchange prefixes are available for provisioning via the Twilio API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVar(&opts.envFile, "env-file", "", "Dotenv file with TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN (default \".env\" if present)")
	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "vanity-recon.yaml", "Optional YAML configuration file")
	rootCmd.Flags().StringVarP(&opts.watchlistFile, "watchlist", "w", "", "Watchlist TOML file (default: built-in watchlist)")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Also write the report as markdown to this file")
	rootCmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "Write progress logs as JSON to stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vanity-recon version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func run(ctx context.Context, opts *cliOptions, stdout, stderr io.Writer) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	// Credentials are checked before anything touches the network.
	cfg, err := config.Load(config.LoadOptions{
		EnvFile:    opts.envFile,
		ConfigFile: opts.configFile,
	})
	if err != nil {
		return err
	}

	logger, flush, err := newLogger(cfg.LogLevel, opts.logJSON, stderr)
	if err != nil {
		return err
	}
	defer flush()

	wlPath := opts.watchlistFile
	if wlPath == "" {
		wlPath = cfg.Watchlist
	}

	var wl *watchlist.Watchlist
	if wlPath != "" {
		logger.Infof("Loading watchlist %s...", wlPath)
		if wl, err = watchlist.Load(wlPath); err != nil {
			return err
		}
	}

	result, err := vanityrecon.Run(ctx, vanityrecon.Options{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		Country:    cfg.Country,
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		Pacing:     cfg.Pacing,
		Watchlist:  wl,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, result.Text)

	st := result.Report.Stats()
	cyan.Fprintf(stdout, "\n📊 %d available, %d taken, %d errors\n", st.Available, st.Taken, st.Errors)

	if opts.outputFile != "" {
		green.Fprintf(stdout, "\n💾 Writing to %s... ", opts.outputFile)
		if err := os.WriteFile(opts.outputFile, []byte(result.Markdown), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		green.Fprintln(stdout, "✓")
	}

	return nil
}

// newLogger returns the colored terminal logger, or a zap JSON logger when
// jsonOutput is set. The returned func flushes buffered log entries.
func newLogger(level string, jsonOutput bool, stderr io.Writer) (vanityrecon.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if !jsonOutput {
		return &cliLogger{w: stderr, level: lvl}, func() {}, nil
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), lvl)
	logger := zap.New(core)

	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}

// cliLogger implements vanityrecon.Logger with colored terminal output.
// Entries below level are dropped, as with the zap logger.
type cliLogger struct {
	w     io.Writer
	level zapcore.Level
}

func (l *cliLogger) Infof(format string, args ...any) {
	if l.level.Enabled(zapcore.InfoLevel) {
		color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
	}
}

func (l *cliLogger) Warnf(format string, args ...any) {
	if l.level.Enabled(zapcore.WarnLevel) {
		color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
	}
}

func (l *cliLogger) Errorf(format string, args ...any) {
	if l.level.Enabled(zapcore.ErrorLevel) {
		color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
	}
}
