//go:build !windows

package logger

import "errors"

// ErrNoSystemLog is returned by OpenSystemLog on platforms without an Event Log.
var ErrNoSystemLog = errors.New("system event log is only available on windows")

// OpenSystemLog is unsupported outside Windows.
func OpenSystemLog(source string) (Logger, error) {
	return nil, ErrNoSystemLog
}

// InstallEventSource is a no-op outside Windows.
func InstallEventSource(source string) error {
	return nil
}

// RemoveEventSource is a no-op outside Windows.
func RemoveEventSource(source string) error {
	return nil
}
