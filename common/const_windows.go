//go:build windows

package common

// DefaultSchtasksPath is the Task Scheduler command-line tool.
const DefaultSchtasksPath = "schtasks.exe"
