// Package service implements the alert schedule controller. It keeps the
// two daily Task Scheduler jobs in step and derives the status shown to
// the user from a fresh query every time; nothing about the jobs is
// cached between calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/warpdl/daily420/internal/schtasks"
	"github.com/warpdl/daily420/pkg/logger"
)

// ErrPartialFailure is returned when only one of the paired jobs exists,
// either right after Enable failed on the afternoon job or when a query
// finds the morning job without its counterpart.
var ErrPartialFailure = errors.New("alerts are only partially enabled")

// Scheduler is the subset of the schtasks client used by the controller.
type Scheduler interface {
	Query(ctx context.Context, name string) (schtasks.TaskInfo, error)
	Create(ctx context.Context, task schtasks.Task) error
	Delete(ctx context.Context, name string) error
}

// Config holds the dependencies of a Controller.
type Config struct {
	// Scheduler manages the jobs. Required.
	Scheduler Scheduler

	// Morning and Afternoon default to the package slots when zero.
	Morning   Slot
	Afternoon Slot

	// IsAdmin defaults to IsElevated.
	IsAdmin func() bool

	// Command defaults to ResolveCommand.
	Command func() (string, error)

	// User defaults to ResolveUser.
	User func() string

	// Logger defaults to a NopLogger.
	Logger logger.Logger
}

// Controller queries, enables and disables the alert jobs. It is meant to
// be driven by one caller at a time.
type Controller struct {
	sched     Scheduler
	morning   Slot
	afternoon Slot
	isAdmin   func() bool
	command   func() (string, error)
	user      func() string
	log       logger.Logger
	state     State
}

// NewController creates a controller in StateUnknown.
func NewController(cfg Config) *Controller {
	c := &Controller{
		sched:     cfg.Scheduler,
		morning:   cfg.Morning,
		afternoon: cfg.Afternoon,
		isAdmin:   cfg.IsAdmin,
		command:   cfg.Command,
		user:      cfg.User,
		log:       cfg.Logger,
		state:     StateUnknown,
	}
	if c.morning == (Slot{}) {
		c.morning = Morning
	}
	if c.afternoon == (Slot{}) {
		c.afternoon = Afternoon
	}
	if c.isAdmin == nil {
		c.isAdmin = IsElevated
	}
	if c.command == nil {
		c.command = ResolveCommand
	}
	if c.user == nil {
		c.user = ResolveUser
	}
	if c.log == nil {
		c.log = logger.NewNopLogger()
	}
	return c
}

// State returns the result of the last operation without querying.
func (c *Controller) State() State {
	return c.state
}

// IsAdmin reports whether enable and disable may succeed.
func (c *Controller) IsAdmin() bool {
	return c.isAdmin()
}

// Slots returns the morning and afternoon slots.
func (c *Controller) Slots() []Slot {
	return []Slot{c.morning, c.afternoon}
}

// NextAlert returns the next trigger time of either job after now.
func (c *Controller) NextAlert(now time.Time) (time.Time, error) {
	return NextAlert(now, c.Slots()...)
}

// Query derives the current state from the morning job and records it.
// StateError is always accompanied by a non-nil error.
func (c *Controller) Query(ctx context.Context) (State, error) {
	state, err := c.query(ctx)
	c.state = state
	if err != nil {
		c.log.Debug("query: %s: %v", state, err)
	}
	return state, err
}

func (c *Controller) query(ctx context.Context) (State, error) {
	state, err := c.jobState(ctx, c.morning)
	if err != nil || state != StateEnabled {
		return state, err
	}
	// The afternoon job is expected to mirror the morning one. A morning
	// job alone is what a half-finished Enable leaves behind.
	pm, err := c.jobState(ctx, c.afternoon)
	if err != nil {
		return StateError, err
	}
	if pm != StateEnabled {
		return StateError, fmt.Errorf("%w: %s exists but %s is %s",
			ErrPartialFailure, c.morning.Name, c.afternoon.Name, strings.ToLower(pm.String()))
	}
	return StateEnabled, nil
}

func (c *Controller) jobState(ctx context.Context, slot Slot) (State, error) {
	info, err := c.sched.Query(ctx, slot.Name)
	if err != nil {
		if errors.Is(err, schtasks.ErrNotFound) {
			return StateDisabled, nil
		}
		return StateError, fmt.Errorf("failed to query %s: %w", slot.Name, err)
	}
	return StateFromStatus(info.Status), nil
}

// StateFromStatus maps a Task Scheduler status field to a State. Anything
// that is not recognisably runnable is Disabled.
func StateFromStatus(status string) State {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "disabled"):
		return StateDisabled
	case strings.Contains(s, "ready"), strings.Contains(s, "running"):
		return StateEnabled
	default:
		return StateDisabled
	}
}

// Enable creates the morning and then the afternoon job. Without admin
// rights it fails with an error matching schtasks.ErrPermissionDenied and
// changes nothing. If the afternoon job cannot be created the morning job
// is left in place and the error matches ErrPartialFailure.
func (c *Controller) Enable(ctx context.Context) error {
	if !c.isAdmin() {
		return schtasks.RequiresAdminError(schtasks.VerbCreate, c.morning.Name)
	}

	command, err := c.command()
	if err != nil {
		return fmt.Errorf("could not determine command to schedule: %w", err)
	}
	user := c.user()

	am := c.morning.Task(command, user)
	if err := c.sched.Create(ctx, am); err != nil {
		c.log.Error("failed to create %s: %v", am.Name, err)
		c.requery(ctx)
		return fmt.Errorf("failed to create %s: %w", am.Name, err)
	}

	pm := c.afternoon.Task(command, user)
	if err := c.sched.Create(ctx, pm); err != nil {
		c.log.Error("created %s but failed to create %s: %v", am.Name, pm.Name, err)
		c.requery(ctx)
		return fmt.Errorf("%w: created %s but failed to create %s: %w", ErrPartialFailure, am.Name, pm.Name, err)
	}

	c.log.Info("scheduled %s at %s and %s at %s running %s as %s",
		am.Name, am.StartTime, pm.Name, pm.StartTime, command, user)
	c.state = StateEnabled
	return nil
}

// Disable deletes both jobs. Jobs that do not exist are skipped, so
// disabling twice reports AlreadyOff the second time. Without admin rights
// it fails with an error matching schtasks.ErrPermissionDenied.
func (c *Controller) Disable(ctx context.Context) (DisableOutcome, error) {
	if !c.isAdmin() {
		return 0, schtasks.RequiresAdminError(schtasks.VerbDelete, c.morning.Name)
	}

	deleted := false
	var errs []error
	for _, slot := range c.Slots() {
		err := c.sched.Delete(ctx, slot.Name)
		switch {
		case err == nil:
			deleted = true
			c.log.Info("deleted %s", slot.Name)
		case errors.Is(err, schtasks.ErrNotFound):
			c.log.Debug("%s was not scheduled", slot.Name)
		default:
			c.log.Error("failed to delete %s: %v", slot.Name, err)
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", slot.Name, err))
		}
	}

	if len(errs) > 0 {
		c.requery(ctx)
		return 0, errors.Join(errs...)
	}

	c.state = StateDisabled
	if deleted {
		return TurnedOff, nil
	}
	return AlreadyOff, nil
}

// requery refreshes the state after a failed mutation. Its own error is
// only logged; the mutation error is what the caller reports.
func (c *Controller) requery(ctx context.Context) {
	if _, err := c.Query(ctx); err != nil {
		c.log.Warning("status after failure: %v", err)
	}
}
