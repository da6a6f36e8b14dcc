//go:build windows

package common

import "testing"

func TestDefaultSchtasksPath(t *testing.T) {
	if DefaultSchtasksPath != "schtasks.exe" {
		t.Errorf("DefaultSchtasksPath = %q; want %q", DefaultSchtasksPath, "schtasks.exe")
	}
}
