//go:build !windows

package common

// DefaultSchtasksPath is the Task Scheduler command-line tool. It only
// exists on Windows; elsewhere every call fails as ToolUnavailable.
const DefaultSchtasksPath = "schtasks"
