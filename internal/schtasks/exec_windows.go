//go:build windows

package schtasks

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// hiddenWindow keeps schtasks from flashing a console window when the
// caller is a windowed process.
func hiddenWindow() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
