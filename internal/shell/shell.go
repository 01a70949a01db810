package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"ytd/internal/domain/consts"
	"ytd/internal/domain/errconsts"
	"ytd/internal/models"
	"ytd/internal/utils/logging"
	"ytd/internal/utils/prompt"
)

// Downloader fetches media and metadata for a URL.
type Downloader interface {
	Video(ctx context.Context, u string) (*models.DownloadResult, error)
	Audio(ctx context.Context, u string) (*models.DownloadResult, error)
	Info(ctx context.Context, u string) (*models.VideoInfo, error)
}

// Stitcher joins video files into one output.
type Stitcher interface {
	Stitch(ctx context.Context, inputs []string, output string) error
}

// Authorizer manages the stored credentials of each integration.
type Authorizer interface {
	Available() bool
	Authenticated(i models.Integration) bool
	Authorize(ctx context.Context, i models.Integration) error
	Reset(i models.Integration) error
}

// Uploader publishes a video artifact.
type Uploader interface {
	Upload(ctx context.Context, path string, req models.UploadRequest) (*models.UploadResult, error)
}

// Backuper copies an artifact to object storage.
type Backuper interface {
	Backup(ctx context.Context, path, bucket string) (string, error)
}

// QRWriter renders a URL as a QR image.
type QRWriter interface {
	Write(u, path string) error
}

// TitleFetcher returns the page title of a URL.
type TitleFetcher func(u string) (string, error)

// Deps are the collaborators the shell dispatches to.
type Deps struct {
	Downloader Downloader
	Stitcher   Stitcher
	Auth       Authorizer
	Uploader   Uploader
	Backuper   Backuper
	QR         QRWriter
	Titles     TitleFetcher
}

// Shell is the interactive command loop.
type Shell struct {
	settings   *models.Settings
	deps       Deps
	in         *prompt.Reader
	out        io.Writer
	interrupts <-chan os.Signal
	now        func() time.Time
}

// New returns a Shell reading answers from in and printing to out.
func New(s *models.Settings, deps Deps, in *prompt.Reader, out io.Writer) *Shell {
	return &Shell{
		settings: s,
		deps:     deps,
		in:       in,
		out:      out,
		now:      time.Now,
	}
}

// WithInterrupts cancels the running command whenever a signal arrives on ch.
func (sh *Shell) WithInterrupts(ch <-chan os.Signal) *Shell {
	sh.interrupts = ch
	return sh
}

// Run reads and executes commands until exit, end of input or ctx ends.
func (sh *Shell) Run(ctx context.Context) error {
	sh.banner()

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(sh.out, "\nGoodbye!")
			return nil
		}

		cmdCtx, stop, interrupted := sh.commandContext(ctx)
		line, err := sh.in.Ask(cmdCtx, consts.ShellPrompt)
		if err != nil {
			stop()
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				fmt.Fprintln(sh.out, "\nGoodbye!")
				return nil
			}
			fmt.Fprintln(sh.out, "Use 'exit' to quit")
			continue
		}

		exit := sh.Execute(cmdCtx, Parse(line))
		wasInterrupted := interrupted.Load()
		stop()

		if wasInterrupted && ctx.Err() == nil {
			fmt.Fprintln(sh.out, "\nUse 'exit' to quit")
		}
		if exit {
			fmt.Fprintln(sh.out, "Goodbye!")
			return nil
		}
	}
}

// Execute dispatches one command and reports its outcome. Returns true for exit.
func (sh *Shell) Execute(ctx context.Context, cmd Command) bool {
	logging.D(2, "Dispatching %q with argument %q", cmd.Verb, cmd.Arg)

	var err error
	switch cmd.Verb {
	case VerbNone:
		return false
	case VerbExit:
		return true
	case VerbHelp:
		sh.help()
	case VerbVideo:
		err = sh.video(ctx, cmd.Arg)
	case VerbAudio:
		err = sh.audio(ctx, cmd.Arg)
	case VerbInfo:
		err = sh.info(ctx, cmd.Arg)
	case VerbList:
		err = sh.list()
	case VerbStitch:
		err = sh.stitch(ctx, cmd.Arg)
	case VerbUpload:
		err = sh.upload(ctx, cmd.Arg)
	case VerbBackup:
		err = sh.backup(ctx, cmd.Arg)
	case VerbQR:
		err = sh.qr(ctx, cmd.Arg)
	case VerbAuth:
		err = sh.auth(ctx, cmd.Arg)
	default:
		sh.failf("Unknown command: %s", cmd.Word)
		sh.help()
	}

	if err != nil {
		sh.report(err)
	}
	return false
}

// commandContext derives a context cancelled by the next interrupt.
func (sh *Shell) commandContext(parent context.Context) (context.Context, func(), *atomic.Bool) {
	ctx, cancel := context.WithCancel(parent)
	interrupted := &atomic.Bool{}
	done := make(chan struct{})

	go func() {
		select {
		case <-sh.interrupts:
			interrupted.Store(true)
			cancel()
		case <-done:
		}
	}()

	return ctx, func() {
		close(done)
		cancel()
	}, interrupted
}

// report prints a one-line error, plus a hint for authorization problems.
func (sh *Shell) report(err error) {
	logging.D(1, "Command failed: %v", err)

	switch {
	case errors.Is(err, errconsts.ErrCancelled), errors.Is(err, context.Canceled):
		fmt.Fprintln(sh.out, "Cancelled.")
	case errors.Is(err, io.EOF):
		fmt.Fprintln(sh.out, "\nInput closed.")
	case errors.Is(err, errconsts.ErrAuthUnavailable):
		sh.failf("%v", err)
		fmt.Fprintf(sh.out, "Place your OAuth client file at %s and try again.\n", sh.settings.ClientSecrets)
	case errors.Is(err, errconsts.ErrAuthRequired):
		sh.failf("%v", err)
		fmt.Fprintln(sh.out, "Run 'auth' to authorize again.")
	default:
		sh.failf("%v", err)
	}
}

func (sh *Shell) okf(format string, args ...any) {
	fmt.Fprintf(sh.out, consts.ColorGreen+"✓ "+consts.ColorReset+format+"\n", args...)
}

func (sh *Shell) failf(format string, args ...any) {
	fmt.Fprintf(sh.out, consts.ColorRed+"✗ "+consts.ColorReset+format+"\n", args...)
}

func (sh *Shell) banner() {
	fmt.Fprintf(sh.out, "%s%s%s - type 'help' for commands, 'exit' to quit\n", consts.ColorBold, consts.ProgramName, consts.ColorReset)
}
