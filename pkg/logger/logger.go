// Package logger provides the logging interface used across daily420.
// It supports console output and, on Windows, the Event Log, which is the
// only place unattended playback runs can report to.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging across all daily420 components.
// Implementations may log to the console or the Windows Event Log.
type Logger interface {
	// Debug logs a diagnostic message (e.g., the raw schtasks arguments).
	Debug(format string, args ...interface{})

	// Info logs an informational message (e.g., "Alerts are now ON").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "event source not registered").
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g., "audio file not found").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger (e.g., Windows Event Log handle).
	// Safe to call multiple times. Returns nil for loggers without resources.
	Close() error
}

// ConsoleLogger writes human readable lines through zerolog's ConsoleWriter.
type ConsoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger creates a logger writing to w. Debug messages are only
// emitted when debug is true.
func NewConsoleLogger(w io.Writer, debug bool) *ConsoleLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.DateTime,
	}
	return &ConsoleLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

func (c *ConsoleLogger) Debug(format string, args ...interface{}) {
	c.log.Debug().Msgf(format, args...)
}

func (c *ConsoleLogger) Info(format string, args ...interface{}) {
	c.log.Info().Msgf(format, args...)
}

func (c *ConsoleLogger) Warning(format string, args ...interface{}) {
	c.log.Warn().Msgf(format, args...)
}

func (c *ConsoleLogger) Error(format string, args ...interface{}) {
	c.log.Error().Msgf(format, args...)
}

// Close is a no-op for ConsoleLogger; the writer is owned by the caller.
func (c *ConsoleLogger) Close() error {
	return nil
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(format string, args ...interface{})   {}
func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger implements Logger for testing purposes.
// It records all log calls for verification in tests.
type MockLogger struct {
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.DebugCalls = append(m.DebugCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)
