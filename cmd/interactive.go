package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"github.com/warpdl/daily420/pkg/logger"
)

const debugLogName = "daily420-debug.log"

type unknownCommandError string

func (e unknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", string(e))
}

// interactive opens the window. The window owns the terminal, so logs go
// to a file in the temp directory when debugging and nowhere otherwise.
func interactive(ctx *cli.Context) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	s.log = logger.NewNopLogger()
	if s.cfg.Debug {
		f, err := os.OpenFile(filepath.Join(os.TempDir(), debugLogName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			s.log = logger.NewConsoleLogger(f, true)
		}
	}
	defer s.log.Close()

	cctx, cancel := commandContext()
	defer cancel()
	if err := runWindow(cctx, s.controller()); err != nil {
		return fmt.Errorf("cannot open the interactive window: %w", err)
	}
	return nil
}
