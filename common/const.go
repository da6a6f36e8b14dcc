package common

// AppName is used for the window title and as the Windows Event Log source.
const AppName = "Daily420"

// Scheduled job names. The morning job is authoritative for status display.
const (
	TaskNameBase = "Daily420Task"
	TaskNameAM   = TaskNameBase + "_AM"
	TaskNamePM   = TaskNameBase + "_PM"
)

// Trigger times of the two daily jobs.
const (
	MorningHour   = 4
	AfternoonHour = 16
	AlertMinute   = 20
)

// PlayFlag re-invokes the binary in unattended playback mode.
// It is embedded in the command line of every scheduled job.
const PlayFlag = "--play"

// AudioFileName is the alert sound looked up beside the executable.
const AudioFileName = "420audio.mp3"

// EnvFileName is an optional dotenv file beside the executable.
// Unattended runs launched by the Task Scheduler read their settings from it.
const EnvFileName = "daily420.env"

// FallbackUser is used for /RU when the current user cannot be resolved.
const FallbackUser = "SYSTEM"
