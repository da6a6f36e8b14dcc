//go:build windows

package logger

import (
	"fmt"

	"golang.org/x/sys/windows/svc/eventlog"
)

// Event IDs for Windows Event Log entries.
const (
	EventIDInfo    uint32 = 1
	EventIDWarning uint32 = 2
	EventIDError   uint32 = 3
)

// eventLogOpener is swapped in tests.
var eventLogOpener = func(source string) (EventLogWriter, error) {
	l, err := eventlog.Open(source)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// EventLogger writes log messages to the Windows Event Log.
// The source must have been registered with InstallEventSource.
type EventLogger struct {
	log EventLogWriter
}

// NewEventLogger opens the Event Log for sourceName.
func NewEventLogger(sourceName string) (*EventLogger, error) {
	w, err := eventLogOpener(sourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	return NewEventLoggerWithWriter(w), nil
}

// NewEventLoggerWithWriter wraps an already opened writer.
func NewEventLoggerWithWriter(w EventLogWriter) *EventLogger {
	return &EventLogger{log: w}
}

// Debug messages are not written to the Event Log.
func (e *EventLogger) Debug(format string, args ...interface{}) {}

func (e *EventLogger) Info(format string, args ...interface{}) {
	// Errors are ignored: playback must go on even if logging fails.
	_ = e.log.Info(EventIDInfo, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Warning(format string, args ...interface{}) {
	_ = e.log.Warning(EventIDWarning, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Error(format string, args ...interface{}) {
	_ = e.log.Error(EventIDError, fmt.Sprintf(format, args...))
}

// Close releases the Windows Event Log handle.
func (e *EventLogger) Close() error {
	if e.log != nil {
		return e.log.Close()
	}
	return nil
}

var _ Logger = (*EventLogger)(nil)

// OpenSystemLog returns an Event Log backed logger for source. It fails
// when the source was never registered (alerts never enabled).
func OpenSystemLog(source string) (Logger, error) {
	l, err := NewEventLogger(source)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// InstallEventSource registers source with the Event Log. Requires admin.
func InstallEventSource(source string) error {
	err := eventlog.InstallAsEventCreate(source, eventlog.Info|eventlog.Warning|eventlog.Error)
	if err != nil {
		return fmt.Errorf("failed to register event source: %w", err)
	}
	return nil
}

// RemoveEventSource unregisters source from the Event Log.
func RemoveEventSource(source string) error {
	return eventlog.Remove(source)
}
