package cmd

import (
	"path/filepath"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	cmdCommon "github.com/warpdl/daily420/cmd/common"
	"github.com/warpdl/daily420/common"
	"github.com/warpdl/daily420/pkg/logger"
)

var (
	rootFlags = []cli.Flag{
		cli.BoolFlag{
			Name:  "play",
			Usage: "play the alert once and exit (used by the scheduled jobs)",
		},
	}

	playFlags = []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Usage: "sound file to play instead of " + common.AudioFileName,
		},
	}
)

// root runs unattended playback with --play and the interactive window
// otherwise.
func root(ctx *cli.Context) error {
	if ctx.Bool("play") {
		return playAlert()
	}
	if ctx.NArg() > 0 {
		return cmdCommon.PrintErrWithHelp(ctx, unknownCommandError(ctx.Args().First()))
	}
	return interactive(ctx)
}

// playAlert is what the scheduled jobs run. Nobody is there to read an
// error, so every failure is logged and the process exits 0.
func playAlert() error {
	dir := exeDir()
	cfg, cfgErr := common.LoadConfig(dir)

	sys, err := openSystemLog(common.AppName)
	log := logger.NewMultiLogger(logger.NewConsoleLogger(stderr, cfg.Debug), sys)
	defer log.Close()
	if err != nil {
		log.Debug("event log unavailable: %v", err)
	}
	if cfgErr != nil {
		log.Warning("ignoring configuration: %v", cfgErr)
	}

	s := &session{dir: dir, cfg: cfg, log: log}
	cctx, cancel := commandContext()
	defer cancel()
	s.player(log).Play(cctx, s.audioPath(""))
	return nil
}

// play is the interactive counterpart of playAlert: it shows progress and
// reports failures.
func play(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.log.Close()
	cctx, cancel := commandContext()
	defer cancel()

	path := s.audioPath(ctx.String("file"))
	rr := time.Millisecond * 50
	p := mpb.New(mpb.WithWidth(64), mpb.WithRefreshRate(rr), mpb.WithOutput(stdout))
	bar := cmdCommon.InitPlaybackBar(p, filepath.Base(path))

	err = s.player(s.log).PlayFile(cctx, path, func(played, total int) {
		bar.SetTotal(int64(total), false)
		bar.SetCurrent(int64(played))
	})
	if err != nil {
		bar.Abort(false)
	} else {
		bar.SetTotal(-1, true)
	}
	p.Wait()
	return err
}
