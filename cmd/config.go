package cmd

const DESCRIPTION = `
Daily420 keeps two Windows Task Scheduler jobs that play an alert
sound every day at 04:20 and 16:20. Run it without a command to open
the interactive window, or use the commands below from a script.
Enabling and disabling the alerts requires Administrator rights.
`

const (
	StatusDescription = `The status command queries the Task Scheduler and prints
whether the daily alerts are on. It exits with an error when
the scheduler cannot be queried.

Example:
        daily420 status

`
	EnableDescription = `The enable command creates (or replaces) the morning and
afternoon jobs. Each job runs this program with --play, so move
the program before enabling if you plan to keep it elsewhere.

Example:
        daily420 enable

`
	DisableDescription = `The disable command deletes both jobs. Running it when the
alerts are already off is not an error.

Example:
        daily420 disable

`
	PlayDescription = `The play command plays the alert sound right away and shows
its progress. Use it to check the sound file and the volume.

Example:
        daily420 play
        daily420 play --file C:\sounds\alert.wav

`
)
