// Package cfg builds the ytd root command, resolves settings and wires the shell.
package cfg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	cfgflags "ytd/internal/cfg/flags"
	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/domain/keys"
	"ytd/internal/domain/paths"
	"ytd/internal/file"
	"ytd/internal/utils/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	progFiles paths.ProgramFiles

	rootCmd = &cobra.Command{
		Use:   consts.ProgramName + " [URL|help]",
		Short: "Download, stitch, upload and back up videos from an interactive shell",
		Long: "ytd downloads videos or audio with yt-dlp, joins clips with ffmpeg, uploads to YouTube\n" +
			"and backs up to Google Cloud Storage. Run without arguments for the interactive shell,\n" +
			"or pass a single URL to download it and exit.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(viper.GetViper())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
)

// InitCommands initializes all commands and their flags.
func InitCommands(pf paths.ProgramFiles) error {
	progFiles = pf

	viper.SetEnvPrefix(consts.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := cfgflags.InitProgramFlags(rootCmd, pf.LogFilePath); err != nil {
		return err
	}
	return cfgflags.InitOneShotFlags(rootCmd)
}

// Execute runs the root command with the given arguments.
func Execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig loads a .env file from the working directory, then the config file if one is set.
func loadConfig(v *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfgFile := v.GetString(keys.ConfigFile)
	if cfgFile == "" {
		return nil
	}
	expanded, err := paths.Expand(cfgFile)
	if err != nil {
		return err
	}
	if err := file.LoadConfigFile(v, expanded); err != nil {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, expanded, err)
	}
	logging.D(1, "Loaded config file %q", expanded)
	return nil
}

// run resolves settings and either executes the single URL argument or enters the shell.
func run(ctx context.Context, args []string) error {
	s, err := BuildSettings(viper.GetViper(), progFiles.LogFilePath)
	if err != nil {
		return err
	}

	if err := logging.SetupLogging(s.LogFile, s.DebugLevel); err != nil {
		logging.W("File logging disabled: %v", err)
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	if err := checkPrograms(s); err != nil {
		return err
	}

	out := os.Stdout
	sh := newShell(s, os.Stdin, out)

	if len(args) == 1 {
		// One-shot: Ctrl-C aborts the request and the process.
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		// Command failures are reported by the shell and do not change the exit code.
		_ = sh.RunOnce(ctx, args[0], viper.GetBool(keys.Audio), viper.GetBool(keys.Info))
		return nil
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	return sh.WithInterrupts(interrupts).Run(ctx)
}
