package service

import (
	"errors"
	"fmt"

	"github.com/warpdl/daily420/internal/schtasks"
)

// Notice is a user-facing report of an operation's outcome.
type Notice struct {
	Title string
	Body  string
	Error bool
}

// EnableNotice describes the result of Enable.
func EnableNotice(err error) Notice {
	if err == nil {
		return Notice{
			Title: "Success!",
			Body: "Daily 4:20 alerts are now ON!\n\n" +
				"Note: if your PC might be asleep at 4:20 and you would still\n" +
				"like it to play the sound, check 'Wake the computer' in\n" +
				"Task Properties -> Conditions (via Task Scheduler).",
		}
	}
	return errorNotice(err)
}

// DisableNotice describes the result of Disable.
func DisableNotice(outcome DisableOutcome, err error) Notice {
	if err != nil {
		return errorNotice(err)
	}
	title := "Done"
	if outcome == AlreadyOff {
		title = "Info"
	}
	return Notice{Title: title, Body: outcome.Message()}
}

func errorNotice(err error) Notice {
	title := "Scheduling Error"
	switch {
	case schtasks.DetailOf(err) == schtasks.RequiresAdmin:
		title = "Admin Rights Needed"
	case errors.Is(err, ErrPartialFailure):
		title = "Partially Enabled"
	}
	return Notice{Title: title, Body: UserMessage(err), Error: true}
}

// UserMessage turns a controller error into text for the user. Every
// message carries the reason reported by the scheduler.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var msg string
	switch schtasks.KindOf(err) {
	case schtasks.KindPermissionDenied:
		if schtasks.DetailOf(err) == schtasks.RequiresAdmin {
			msg = "This action requires Administrator privileges.\nPlease run 'As Administrator'."
		} else {
			msg = "Access Denied. Please run 'As Administrator'."
		}
	case schtasks.KindToolUnavailable:
		msg = "'schtasks' command not found. Is Windows setup correctly?"
	case schtasks.KindMalformedArguments:
		msg = fmt.Sprintf("Invalid argument passed to schtasks.\nDetails: %s", schtasks.DetailOf(err))
	case schtasks.KindTimedOut:
		msg = "The Task Scheduler did not respond in time."
	default:
		msg = fmt.Sprintf("Scheduling command failed.\nError: %s", schtasks.DetailOf(err))
	}
	if errors.Is(err, ErrPartialFailure) {
		msg = "Only the morning alert was scheduled; the afternoon alert failed.\n" + msg
	}
	return msg
}
