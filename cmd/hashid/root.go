package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/hashid/internal/cli"
	"github.com/Veraticus/hashid/internal/common"
	"github.com/Veraticus/hashid/internal/config"
	"github.com/Veraticus/hashid/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootFlags struct {
	cfgFile     string
	interactive bool
	noColor     bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	v := viper.New()
	config.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "hashid [flags] [input...]",
		Short: "Identify the different types of hashes used to encrypt data",
		Long: `hashid identifies the algorithms a digest may have been produced by,
judging only by its shape.

Each input may be a hash or a file with one hash per line. With no input,
or "-" as the first input, hashes are read from stdin.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, v, flags)
		},
	}
	cmd.SetVersionTemplate("hashID v{{.Version}} by c0re (https://github.com/psypanda/hashID)\n")

	f := cmd.Flags()
	f.BoolP("all", "a", false, "list all hash algorithms including salted passwords")
	f.BoolP("mode", "m", false, "show corresponding hashcat mode in output")
	f.BoolP("john", "j", false, "show corresponding John the Ripper format in output")
	f.StringP("output", "o", "", "write output to file")
	f.String("catalog", "", "YAML file with additional hash patterns")
	f.Bool("replace-catalog", false, "use only the patterns from --catalog")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")
	f.String("log-format", "console", "log format (console, json)")
	f.StringVar(&flags.cfgFile, "config", "", "config file (default: $HOME/.config/hashid/config.yaml)")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "identify hashes interactively as you type")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyOutputAll, f.Lookup("all"))
	_ = v.BindPFlag(config.KeyOutputHashcat, f.Lookup("mode"))
	_ = v.BindPFlag(config.KeyOutputJohn, f.Lookup("john"))
	_ = v.BindPFlag(config.KeyOutputFile, f.Lookup("output"))
	_ = v.BindPFlag(config.KeyCatalogFile, f.Lookup("catalog"))
	_ = v.BindPFlag(config.KeyCatalogReplace, f.Lookup("replace-catalog"))
	_ = v.BindPFlag(config.KeyLogLevel, f.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, f.Lookup("log-format"))

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, v *viper.Viper, flags rootFlags) error {
	if err := initConfig(v, flags.cfgFile); err != nil {
		return common.NewUserError("failed to read configuration", err)
	}
	if flags.noColor {
		v.Set(config.KeyOutputColor, false)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}

	if err := setupLogging(cmd.ErrOrStderr(), cfg.Logging); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	fs := afero.NewOsFs()

	identifier, err := buildIdentifier(fs, cfg.Catalog)
	if err != nil {
		return common.NewUserError("failed to load pattern catalog", err)
	}

	opts := cli.Options{
		ShowExtended: cfg.Output.ShowAll,
		ShowHashcat:  cfg.Output.ShowHashcat,
		ShowJohn:     cfg.Output.ShowJohn,
		Color:        cfg.Output.Color,
	}

	if flags.interactive {
		return tui.Run(cmd.Context(), identifier, tui.WithOptions(opts))
	}

	out := cmd.OutOrStdout()
	runnerOpts := []cli.RunnerOption{
		cli.WithFs(fs),
		cli.WithStdin(cmd.InOrStdin()),
	}

	if cfg.Output.File != "" {
		file, err := fs.Create(cfg.Output.File)
		if err != nil {
			return common.NewUserError("failed to create output file", err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				slog.Warn("Failed to close output file", "file", cfg.Output.File, "error", closeErr)
			}
		}()
		out = file

		if isTerminal(cmd.ErrOrStderr()) {
			runnerOpts = append(runnerOpts, cli.WithProgress(cmd.ErrOrStderr()))
		}
	}

	runner := cli.NewRunner(identifier, cli.NewWriter(out, opts), runnerOpts...)
	summary, err := runner.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	slog.Info("Identification complete",
		"inputs", summary.Inputs,
		"identified", summary.Identified,
		"unknown", summary.Unknown,
		"failed_files", summary.FailedFiles)

	return nil
}

// initConfig points v at the config file and the HASHID_ environment.
// A missing default config file is not an error.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HASHID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("Using config file", "file", filepath.Clean(used))
	}
	return nil
}

func setupLogging(w io.Writer, cfg config.LoggingConfig) error {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(w, level, cfg.Format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
