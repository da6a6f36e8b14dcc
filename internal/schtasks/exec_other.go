//go:build !windows

package schtasks

import "syscall"

func hiddenWindow() *syscall.SysProcAttr {
	return nil
}
