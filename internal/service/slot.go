package service

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/warpdl/daily420/common"
	"github.com/warpdl/daily420/internal/schtasks"
)

// Slot is one of the two daily alert jobs.
type Slot struct {
	Name   string
	Hour   int
	Minute int
}

// Morning and Afternoon are the default alert slots.
var (
	Morning   = Slot{Name: common.TaskNameAM, Hour: common.MorningHour, Minute: common.AlertMinute}
	Afternoon = Slot{Name: common.TaskNamePM, Hour: common.AfternoonHour, Minute: common.AlertMinute}
)

// StartTime formats the trigger time for /ST.
func (s Slot) StartTime() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// Cron returns the 5-field cron expression equivalent to the daily trigger.
func (s Slot) Cron() string {
	return fmt.Sprintf("%d %d * * *", s.Minute, s.Hour)
}

// Task builds the scheduler definition of s running command as user.
func (s Slot) Task(command, user string) schtasks.Task {
	return schtasks.Task{
		Name:        s.Name,
		StartTime:   s.StartTime(),
		Command:     command,
		User:        user,
		RunLevel:    schtasks.RunLevelHighest,
		Interactive: true,
	}
}

// NextTick returns the first trigger of s strictly after from, in from's location.
func (s Slot) NextTick(from time.Time) (time.Time, error) {
	next, err := gronx.NextTickAfter(s.Cron(), from, false)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid trigger %q for %s: %w", s.Cron(), s.Name, err)
	}
	return next, nil
}

// NextAlert returns the earliest trigger among slots after from.
func NextAlert(from time.Time, slots ...Slot) (time.Time, error) {
	var next time.Time
	for _, s := range slots {
		t, err := s.NextTick(from)
		if err != nil {
			return time.Time{}, err
		}
		if next.IsZero() || t.Before(next) {
			next = t
		}
	}
	return next, nil
}
