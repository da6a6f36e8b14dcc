package schtasks

import (
	"bufio"
	"context"
	"strings"
)

// RunLevel is the /RL value of a task.
type RunLevel string

const (
	RunLevelHighest RunLevel = "HIGHEST"
	RunLevelLimited RunLevel = "LIMITED"
)

// Task is the definition of a daily task passed to /Create.
type Task struct {
	// Name is the /TN task name.
	Name string

	// StartTime is the daily trigger time, formatted HH:MM.
	StartTime string

	// Command is the /TR command line, already quoted.
	Command string

	// User is the /RU principal.
	User string

	// RunLevel is the /RL run level.
	RunLevel RunLevel

	// Interactive adds /IT: the task only runs while User is logged on.
	Interactive bool
}

// CreateArgs returns the arguments following /Create. /F is always set so
// an existing task with the same name is replaced.
func (t Task) CreateArgs() []string {
	args := []string{
		"/TN", t.Name,
		"/SC", "DAILY",
		"/ST", t.StartTime,
		"/TR", t.Command,
	}
	if t.User != "" {
		args = append(args, "/RU", t.User)
	}
	if t.RunLevel != "" {
		args = append(args, "/RL", string(t.RunLevel))
	}
	if t.Interactive {
		args = append(args, "/IT")
	}
	return append(args, "/F")
}

// TaskInfo is the subset of a /Query /FO LIST record used by daily420.
type TaskInfo struct {
	Name    string
	Status  string
	NextRun string
}

// ParseList extracts the first task record from /FO LIST output. ok is
// false when the output holds no TaskName field.
func ParseList(out string) (info TaskInfo, ok bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "taskname":
			if ok {
				// start of a second record
				return info, true
			}
			info.Name = value
			ok = true
		case "status":
			if ok && info.Status == "" {
				info.Status = value
			}
		case "next run time":
			if ok && info.NextRun == "" {
				info.NextRun = value
			}
		}
	}
	return info, ok
}

// Query returns the record of the named task. A missing task yields an
// error matching ErrNotFound; output without a task record yields a
// KindUnknown *Error.
func (c *Client) Query(ctx context.Context, name string) (TaskInfo, error) {
	out, err := c.Run(ctx, VerbQuery, "/TN", name, "/FO", "LIST")
	if err != nil {
		return TaskInfo{}, err
	}
	info, ok := ParseList(out)
	if !ok {
		return TaskInfo{}, &Error{
			Kind:   KindUnknown,
			Verb:   VerbQuery,
			Task:   name,
			Detail: "no task record in schtasks output",
		}
	}
	return info, nil
}

// Create registers t, replacing any task with the same name.
func (c *Client) Create(ctx context.Context, t Task) error {
	_, err := c.Run(ctx, VerbCreate, t.CreateArgs()...)
	return err
}

// Delete removes the named task without confirmation.
func (c *Client) Delete(ctx context.Context, name string) error {
	_, err := c.Run(ctx, VerbDelete, "/TN", name, "/F")
	return err
}
