// Package common provides shared constants and configuration used across
// the daily420 commands.
package common

// Environment variable names for configuration.
const (
	// SchtasksPathEnv overrides the path of the schtasks executable.
	SchtasksPathEnv = "DAILY420_SCHTASKS"

	// SchtasksTimeoutEnv bounds every schtasks invocation (Go duration, "0" disables).
	SchtasksTimeoutEnv = "DAILY420_SCHTASKS_TIMEOUT"

	// AudioPathEnv overrides the alert sound location.
	AudioPathEnv = "DAILY420_AUDIO"

	// VolumeEnv adjusts playback volume in base-2 steps (0 keeps the original level).
	VolumeEnv = "DAILY420_VOLUME"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "DAILY420_DEBUG"
)
