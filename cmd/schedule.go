package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/warpdl/daily420/common"
	"github.com/warpdl/daily420/internal/service"
)

func status(ctx *cli.Context) error {
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

	c := s.controller()
	state, err := c.Query(cctx)
	fmt.Fprintf(stdout, "Status: %s\n", state)
	if state == service.StateEnabled {
		for _, slot := range c.Slots() {
			fmt.Fprintf(stdout, "  %s\tdaily at %s\n", slot.Name, slot.StartTime())
		}
		if next, err := c.NextAlert(time.Now()); err == nil {
			fmt.Fprintf(stdout, "Next alert: %s\n", next.Format("Mon Jan 2 15:04"))
		}
	}
	if c.IsAdmin() {
		fmt.Fprintln(stdout, "(Running as Administrator)")
	} else {
		fmt.Fprintln(stdout, "(Run as Admin to Enable/Disable)")
	}
	if err != nil {
		return userError{err}
	}
	return nil
}

func enable(ctx *cli.Context) error {
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

	if err := s.controller().Enable(cctx); err != nil {
		return userError{err}
	}
	// unattended runs log to the Event Log once the source exists
	if err := installEventSource(common.AppName); err != nil {
		s.log.Warning("could not register the %s event source: %v", common.AppName, err)
	}
	fmt.Fprintln(stdout, service.EnableNotice(nil).Body)
	return nil
}

func disable(ctx *cli.Context) error {
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

	outcome, err := s.controller().Disable(cctx)
	if err != nil {
		return userError{err}
	}
	if err := removeEventSource(common.AppName); err != nil {
		s.log.Debug("event source not removed: %v", err)
	}
	fmt.Fprintln(stdout, outcome.Message())
	return nil
}
