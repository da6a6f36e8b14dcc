package schtasks

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/warpdl/daily420/pkg/logger"
)

// Verb selects the schtasks operation.
type Verb string

const (
	VerbQuery  Verb = "query"
	VerbCreate Verb = "create"
	VerbDelete Verb = "delete"
)

// Flag returns the command-line switch for v, e.g. "/Query".
func (v Verb) Flag() string {
	if v == "" {
		return ""
	}
	return "/" + strings.ToUpper(string(v[:1])) + string(v[1:])
}

// Mutating reports whether v changes the scheduler's job table.
func (v Verb) Mutating() bool {
	return v == VerbCreate || v == VerbDelete
}

// Output is the captured result of one subprocess run.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs a program to completion. A non-zero exit status is
// reported through Output.ExitCode; the error is reserved for failures to
// run the program at all.
type Executor interface {
	Execute(ctx context.Context, name string, args []string) (Output, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, name string, args []string) (Output, error)

func (f ExecutorFunc) Execute(ctx context.Context, name string, args []string) (Output, error) {
	return f(ctx, name, args)
}

// Config holds the settings for a Client.
type Config struct {
	// Path is the schtasks executable.
	Path string

	// Timeout bounds each invocation. Zero means no timeout.
	Timeout time.Duration

	// IsAdmin reports whether the process may run mutating verbs.
	// If nil, the process is treated as not elevated.
	IsAdmin func() bool

	// Executor runs the subprocess. If nil, os/exec is used.
	Executor Executor

	// Logger receives debug traces. If nil, nothing is logged.
	Logger logger.Logger
}

// Client invokes schtasks.
type Client struct {
	path    string
	timeout time.Duration
	isAdmin func() bool
	exec    Executor
	log     logger.Logger
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	c := &Client{
		path:    cfg.Path,
		timeout: cfg.Timeout,
		isAdmin: cfg.IsAdmin,
		exec:    cfg.Executor,
		log:     cfg.Logger,
	}
	if c.path == "" {
		c.path = "schtasks"
	}
	if c.isAdmin == nil {
		c.isAdmin = func() bool { return false }
	}
	if c.exec == nil {
		c.exec = execExecutor{}
	}
	if c.log == nil {
		c.log = logger.NewNopLogger()
	}
	return c
}

// Run invokes schtasks with verb and args and returns its stdout.
// Mutating verbs fail with a PermissionDenied *Error without running the
// tool when the process is not elevated.
func (c *Client) Run(ctx context.Context, verb Verb, args ...string) (string, error) {
	task := taskNameFromArgs(args)
	if verb.Mutating() && !c.isAdmin() {
		return "", RequiresAdminError(verb, task)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	full := append([]string{verb.Flag()}, args...)
	c.log.Debug("running %s %s", c.path, strings.Join(full, " "))

	out, err := c.exec.Execute(ctx, c.path, full)
	if err != nil {
		return "", &Error{Kind: kindOfExecError(ctx, err), Verb: verb, Task: task, Detail: err.Error()}
	}
	if out.ExitCode != 0 {
		kind, detail := Classify(out.Stdout, out.Stderr)
		c.log.Debug("schtasks %s exited with %d: %s", verb, out.ExitCode, detail)
		return out.Stdout, &Error{Kind: kind, Verb: verb, Task: task, Detail: detail}
	}
	return out.Stdout, nil
}

func kindOfExecError(ctx context.Context, err error) Kind {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return KindTimedOut
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return KindToolUnavailable
	}
	return KindUnknown
}

func taskNameFromArgs(args []string) string {
	for i := 0; i < len(args)-1; i++ {
		if strings.EqualFold(args[i], "/TN") {
			return args[i+1]
		}
	}
	return ""
}

// execExecutor runs the tool through os/exec with its console hidden.
type execExecutor struct{}

func (execExecutor) Execute(ctx context.Context, name string, args []string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = hiddenWindow()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Output{}, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Output{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitErr.ExitCode(),
		}, nil
	}
	if err != nil {
		return Output{}, err
	}
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
