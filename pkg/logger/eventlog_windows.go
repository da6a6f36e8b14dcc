//go:build windows

package logger

// EventLogWriter abstracts the Windows Event Log API for testability.
// The interface matches the methods of eventlog.Log that EventLogger uses.
type EventLogWriter interface {
	Info(eid uint32, msg string) error
	Warning(eid uint32, msg string) error
	Error(eid uint32, msg string) error
	Close() error
}
