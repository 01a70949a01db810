// Package cfgflags handles Cobra/Viper commands.
package cfgflags

import (
	"fmt"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// InitProgramFlags initializes user flag settings for paths, external programs and logging.
func InitProgramFlags(rootCmd *cobra.Command, logFile string) error {
	pf := rootCmd.PersistentFlags()

	// Files and directories
	pf.String(keys.DownloadDir, consts.DefaultDownloadDir, "Directory downloaded and generated files are saved to")
	pf.String(keys.CredentialsDir, consts.DefaultCredentialsDir, "Directory holding OAuth tokens and the saved bucket name")
	pf.String(keys.ClientSecrets, consts.DefaultClientSecrets, "Google OAuth client file (installed or web application)")
	pf.String(keys.ConfigFile, "", "Config file (any Viper-supported format)")
	pf.String(keys.LogFile, logFile, "Log file path")

	// External programs
	pf.String(keys.YtdlpPath, consts.DefaultYtdlpBin, "yt-dlp executable")
	pf.String(keys.FFmpegPath, consts.DefaultFFmpegBin, "ffmpeg executable")
	pf.String(keys.FFprobePath, consts.DefaultFFprobeBin, "ffprobe executable")

	// Downloads
	pf.String(keys.CookieSource, "", "Cookies for yt-dlp: 'browser' to read local browser cookies, or a cookies.txt path")

	// Cloud integrations
	pf.String(keys.RedirectURL, consts.DefaultRedirectURL, "OAuth redirect URL registered for the client")
	pf.String(keys.GCSBucket, "", "Cloud Storage bucket for backups")

	// Debug level
	pf.Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")

	return bindFlags(pf,
		keys.DownloadDir, keys.CredentialsDir, keys.ClientSecrets, keys.ConfigFile, keys.LogFile,
		keys.YtdlpPath, keys.FFmpegPath, keys.FFprobePath,
		keys.CookieSource, keys.RedirectURL, keys.GCSBucket, keys.DebugLevel,
	)
}

// InitOneShotFlags initializes the flags selecting what a single URL argument does.
func InitOneShotFlags(rootCmd *cobra.Command) error {
	f := rootCmd.Flags()
	f.Bool(keys.Audio, false, "Download audio only (mp3)")
	f.Bool(keys.Info, false, "Print video information without downloading")
	rootCmd.MarkFlagsMutuallyExclusive(keys.Audio, keys.Info)

	return bindFlags(f, keys.Audio, keys.Info)
}

// bindFlags binds each named flag to the Viper key of the same name.
func bindFlags(fs *pflag.FlagSet, names ...string) error {
	for _, n := range names {
		flag := fs.Lookup(n)
		if flag == nil {
			return fmt.Errorf("flag %q is not defined", n)
		}
		if err := viper.BindPFlag(n, flag); err != nil {
			return err
		}
	}
	return nil
}
