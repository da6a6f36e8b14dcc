// Package schtasks is a thin client for the Windows Task Scheduler
// command-line tool.
//
// Every call runs schtasks as a hidden subprocess and returns its stdout.
// Failures are reported as *Error values whose Kind is derived from the
// tool's output by Classify; callers match them with errors.Is against the
// package sentinels instead of inspecting text themselves.
package schtasks
