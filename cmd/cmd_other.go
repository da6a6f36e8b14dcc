//go:build !windows

package cmd

import "github.com/urfave/cli"

// getPlatformCommands returns platform-specific CLI commands. The event
// log commands only exist on Windows.
func getPlatformCommands() []cli.Command {
	return nil
}
