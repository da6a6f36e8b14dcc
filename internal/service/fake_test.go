package service

import (
	"context"

	"github.com/warpdl/daily420/internal/schtasks"
)

// fakeScheduler is an in-memory job table standing in for the Task
// Scheduler. It applies the same admin rule as the real client.
type fakeScheduler struct {
	jobs  map[string]schtasks.Task
	state map[string]string // status field per job, default "Ready"
	admin bool

	// per-name injected failures
	queryErr  map[string]error
	createErr map[string]error
	deleteErr map[string]error

	calls []string
}

func newFakeScheduler(admin bool) *fakeScheduler {
	return &fakeScheduler{
		jobs:      make(map[string]schtasks.Task),
		state:     make(map[string]string),
		admin:     admin,
		queryErr:  make(map[string]error),
		createErr: make(map[string]error),
		deleteErr: make(map[string]error),
	}
}

func notFound(verb schtasks.Verb, name string) error {
	return &schtasks.Error{
		Kind:   schtasks.KindNotFound,
		Verb:   verb,
		Task:   name,
		Detail: "ERROR: The system cannot find the file specified.",
	}
}

func (f *fakeScheduler) Query(ctx context.Context, name string) (schtasks.TaskInfo, error) {
	f.calls = append(f.calls, "query "+name)
	if err := f.queryErr[name]; err != nil {
		return schtasks.TaskInfo{}, err
	}
	if _, ok := f.jobs[name]; !ok {
		return schtasks.TaskInfo{}, notFound(schtasks.VerbQuery, name)
	}
	status, ok := f.state[name]
	if !ok {
		status = "Ready"
	}
	return schtasks.TaskInfo{Name: `\` + name, Status: status}, nil
}

func (f *fakeScheduler) Create(ctx context.Context, task schtasks.Task) error {
	f.calls = append(f.calls, "create "+task.Name)
	if !f.admin {
		return schtasks.RequiresAdminError(schtasks.VerbCreate, task.Name)
	}
	if err := f.createErr[task.Name]; err != nil {
		return err
	}
	f.jobs[task.Name] = task
	return nil
}

func (f *fakeScheduler) Delete(ctx context.Context, name string) error {
	f.calls = append(f.calls, "delete "+name)
	if !f.admin {
		return schtasks.RequiresAdminError(schtasks.VerbDelete, name)
	}
	if err := f.deleteErr[name]; err != nil {
		return err
	}
	if _, ok := f.jobs[name]; !ok {
		return notFound(schtasks.VerbDelete, name)
	}
	delete(f.jobs, name)
	delete(f.state, name)
	return nil
}

func (f *fakeScheduler) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
