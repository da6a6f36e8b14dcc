package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
	"github.com/warpdl/daily420/common"
)

var errEventLogAdmin = errors.New("changing the event log source requires Administrator privileges")

func eventLogCommand() cli.Command {
	return cli.Command{
		Name:  "eventlog",
		Usage: "registers or removes the Windows Event Log source",
		Subcommands: []cli.Command{
			{
				Name:   "install",
				Usage:  "register the " + common.AppName + " event source",
				Action: eventLogInstall,
			},
			{
				Name:   "remove",
				Usage:  "remove the " + common.AppName + " event source",
				Action: eventLogRemove,
			},
		},
	}
}

func eventLogInstall(ctx *cli.Context) error {
	if !isElevated() {
		return errEventLogAdmin
	}
	if err := installEventSource(common.AppName); err != nil {
		return fmt.Errorf("failed to register event source: %w", err)
	}
	fmt.Fprintf(stdout, "Event source %s registered.\n", common.AppName)
	return nil
}

func eventLogRemove(ctx *cli.Context) error {
	if !isElevated() {
		return errEventLogAdmin
	}
	if err := removeEventSource(common.AppName); err != nil {
		return fmt.Errorf("failed to remove event source: %w", err)
	}
	fmt.Fprintf(stdout, "Event source %s removed.\n", common.AppName)
	return nil
}
