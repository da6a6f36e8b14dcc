package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/warpdl/daily420/common"
	"github.com/warpdl/daily420/internal/player"
	"github.com/warpdl/daily420/internal/schtasks"
	"github.com/warpdl/daily420/internal/service"
	"github.com/warpdl/daily420/internal/tui"
	"github.com/warpdl/daily420/pkg/logger"
)

// Swapped by tests.
var (
	executable = os.Executable
	getwd      = os.Getwd
	isElevated = service.IsElevated

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	newScheduler = func(cfg common.Config, log logger.Logger) service.Scheduler {
		return schtasks.New(schtasks.Config{
			Path:    cfg.SchtasksPath,
			Timeout: cfg.SchtasksTimeout,
			IsAdmin: isElevated,
			Logger:  log,
		})
	}
	runWindow = func(ctx context.Context, c tui.Controller) error {
		return tui.Run(ctx, c)
	}

	audioFs        = afero.NewOsFs()
	newAudioOutput = func() player.Output { return nil }

	openSystemLog      = logger.OpenSystemLog
	installEventSource = logger.InstallEventSource
	removeEventSource  = logger.RemoveEventSource
)

// session is the resolved configuration of one invocation.
type session struct {
	dir string
	cfg common.Config
	log logger.Logger
}

// newSession loads the configuration beside the executable and logs to
// stderr.
func newSession() (*session, error) {
	dir := exeDir()
	cfg, err := common.LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	return &session{
		dir: dir,
		cfg: cfg,
		log: logger.NewConsoleLogger(stderr, cfg.Debug),
	}, nil
}

func exeDir() string {
	exe, err := executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func (s *session) controller() *service.Controller {
	return service.NewController(service.Config{
		Scheduler: newScheduler(s.cfg, s.log),
		IsAdmin:   isElevated,
		Logger:    s.log,
	})
}

func (s *session) player(log logger.Logger) *player.Player {
	return player.New(player.Config{
		Fs:     audioFs,
		Output: newAudioOutput(),
		Volume: s.cfg.Volume,
		Logger: log,
	})
}

// audioPath resolves the alert sound: override, then the configured path,
// then the executable's directory and finally the working directory.
func (s *session) audioPath(override string) string {
	if override == "" {
		override = s.cfg.AudioPath
	}
	cwd, _ := getwd()
	return player.ResolveAsset(audioFs, override, common.AudioFileName, s.dir, cwd)
}

// commandContext is cancelled on Ctrl+C.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// userError prints as the message shown to users while keeping the
// underlying error for errors.Is.
type userError struct {
	err error
}

func (e userError) Error() string {
	return service.UserMessage(e.err)
}

func (e userError) Unwrap() error {
	return e.err
}
