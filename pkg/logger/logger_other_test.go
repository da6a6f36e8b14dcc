//go:build !windows

package logger

import (
	"errors"
	"testing"
)

func TestOpenSystemLog_Unsupported(t *testing.T) {
	l, err := OpenSystemLog("Daily420")
	if l != nil {
		t.Error("expected nil logger")
	}
	if !errors.Is(err, ErrNoSystemLog) {
		t.Errorf("expected ErrNoSystemLog, got %v", err)
	}
}

func TestEventSource_NoOp(t *testing.T) {
	if err := InstallEventSource("Daily420"); err != nil {
		t.Errorf("InstallEventSource: %v", err)
	}
	if err := RemoveEventSource("Daily420"); err != nil {
		t.Errorf("RemoveEventSource: %v", err)
	}
}
