package schtasks

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed scheduler invocation.
type Kind int

const (
	KindUnknown Kind = iota
	KindPermissionDenied
	KindToolUnavailable
	KindMalformedArguments
	KindNotFound
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindPermissionDenied:
		return "permission denied"
	case KindToolUnavailable:
		return "tool unavailable"
	case KindMalformedArguments:
		return "malformed arguments"
	case KindNotFound:
		return "not found"
	case KindTimedOut:
		return "timed out"
	default:
		return "unknown failure"
	}
}

// Sentinel errors matched by *Error through errors.Is.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrToolUnavailable    = errors.New("schtasks not available")
	ErrMalformedArguments = errors.New("malformed schtasks arguments")
	ErrNotFound           = errors.New("scheduled task not found")
	ErrTimedOut           = errors.New("schtasks timed out")
)

// RequiresAdmin is the detail of errors returned for mutating verbs when
// the process is not elevated.
const RequiresAdmin = "Requires Admin"

// unknownDetail is used when the tool failed without printing anything.
const unknownDetail = "Unknown schtasks error"

// Error describes a failed scheduler invocation.
type Error struct {
	Kind   Kind
	Verb   Verb
	Task   string
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("schtasks")
	if e.Verb != "" {
		b.WriteString(" ")
		b.WriteString(e.Verb.Flag())
	}
	if e.Task != "" {
		fmt.Fprintf(&b, " %q", e.Task)
	}
	fmt.Fprintf(&b, ": %s", e.Kind)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindPermissionDenied:
		return target == ErrPermissionDenied
	case KindToolUnavailable:
		return target == ErrToolUnavailable
	case KindMalformedArguments:
		return target == ErrMalformedArguments
	case KindNotFound:
		return target == ErrNotFound
	case KindTimedOut:
		return target == ErrTimedOut
	}
	return false
}

// RequiresAdminError is returned for a mutating verb attempted without
// administrative rights.
func RequiresAdminError(verb Verb, task string) *Error {
	return &Error{Kind: KindPermissionDenied, Verb: verb, Task: task, Detail: RequiresAdmin}
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// DetailOf returns the tool output carried by the first *Error in err's
// chain, or err's text otherwise.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

type pattern struct {
	substr string
	kind   Kind
}

// patterns are matched in order against the lowercased tool output.
// They depend on the exact English phrasing of schtasks.
var patterns = []pattern{
	{"access is denied", KindPermissionDenied},
	{"invalid argument", KindMalformedArguments},
	{"invalid syntax", KindMalformedArguments},
	{"cannot find the file specified", KindNotFound},
	{"could not find the task", KindNotFound},
	{"does not exist", KindNotFound},
}

// Classify maps the output of a failed invocation to a Kind. stderr is
// preferred; stdout is used when stderr is empty. The returned detail is
// the trimmed text that was inspected.
func Classify(stdout, stderr string) (Kind, string) {
	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = strings.TrimSpace(stdout)
	}
	if detail == "" {
		return KindUnknown, unknownDetail
	}
	lower := strings.ToLower(detail)
	for _, p := range patterns {
		if strings.Contains(lower, p.substr) {
			return p.kind, detail
		}
	}
	return KindUnknown, detail
}
