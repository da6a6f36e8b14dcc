//go:build !windows

package service

import "os"

// IsElevated reports whether the process runs as root. The Task Scheduler
// only exists on Windows, so elsewhere this only decides whether a
// mutating call reaches the (missing) tool.
func IsElevated() bool {
	return os.Geteuid() == 0
}
