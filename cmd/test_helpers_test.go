package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/daily420/common"
	"github.com/warpdl/daily420/internal/player"
	"github.com/warpdl/daily420/internal/schtasks"
	"github.com/warpdl/daily420/internal/service"
	"github.com/warpdl/daily420/pkg/logger"
)

// fakeSchtasks answers schtasks command lines from an in-memory job table.
type fakeSchtasks struct {
	jobs  map[string]bool
	fail  map[string]schtasks.Output // keyed by "<verb flag> <task>"
	calls []string
}

func newFakeSchtasks() *fakeSchtasks {
	return &fakeSchtasks{jobs: map[string]bool{}, fail: map[string]schtasks.Output{}}
}

func (f *fakeSchtasks) Execute(_ context.Context, _ string, args []string) (schtasks.Output, error) {
	verb, name := args[0], args[2]
	f.calls = append(f.calls, verb+" "+name)
	if out, ok := f.fail[verb+" "+name]; ok {
		return out, nil
	}
	missing := schtasks.Output{
		Stderr:   "ERROR: The system cannot find the file specified.\r\n",
		ExitCode: 1,
	}
	switch verb {
	case "/Query":
		if !f.jobs[name] {
			return missing, nil
		}
		return schtasks.Output{Stdout: fmt.Sprintf(
			"\r\nFolder: \\\r\nTaskName: \\%s\r\nNext Run Time: N/A\r\nStatus: Ready\r\n", name)}, nil
	case "/Create":
		f.jobs[name] = true
		return schtasks.Output{Stdout: fmt.Sprintf("SUCCESS: The scheduled task %q has successfully been created.\r\n", name)}, nil
	case "/Delete":
		if !f.jobs[name] {
			return missing, nil
		}
		delete(f.jobs, name)
		return schtasks.Output{Stdout: "SUCCESS\r\n"}, nil
	}
	return schtasks.Output{Stderr: "ERROR: Invalid syntax.\r\n", ExitCode: 1}, nil
}

// drainOutput plays a streamer to the end inside Play.
type drainOutput struct{}

func (drainOutput) Init(beep.SampleRate, int) error { return nil }
func (drainOutput) Close()                          {}
func (drainOutput) Play(s beep.Streamer) {
	buf := make([][2]float64, 512)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

type testEnv struct {
	dir       string
	sched     *fakeSchtasks
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	fs        afero.Fs
	admin     bool
	sysLog    *logger.MockLogger
	installed int
	removed   int
}

// setupTest points every package hook at fakes. The executable lives in
// a fresh temp dir so no env file is picked up.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		dir:    t.TempDir(),
		sched:  newFakeSchtasks(),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		fs:     afero.NewMemMapFs(),
		sysLog: logger.NewMockLogger(),
	}
	for _, k := range []string{
		common.SchtasksPathEnv, common.SchtasksTimeoutEnv, common.AudioPathEnv,
		common.VolumeEnv, common.DebugEnv,
	} {
		t.Setenv(k, "")
	}

	oldExecutable, oldGetwd, oldElevated := executable, getwd, isElevated
	oldStdout, oldStderr := stdout, stderr
	oldScheduler, oldWindow := newScheduler, runWindow
	oldFs, oldOutput := audioFs, newAudioOutput
	oldOpen, oldInstall, oldRemove := openSystemLog, installEventSource, removeEventSource
	t.Cleanup(func() {
		executable, getwd, isElevated = oldExecutable, oldGetwd, oldElevated
		stdout, stderr = oldStdout, oldStderr
		newScheduler, runWindow = oldScheduler, oldWindow
		audioFs, newAudioOutput = oldFs, oldOutput
		openSystemLog, installEventSource, removeEventSource = oldOpen, oldInstall, oldRemove
	})

	executable = func() (string, error) { return filepath.Join(env.dir, "daily420.exe"), nil }
	getwd = func() (string, error) { return env.dir, nil }
	isElevated = func() bool { return env.admin }
	stdout, stderr = env.out, env.errOut
	newScheduler = func(cfg common.Config, log logger.Logger) service.Scheduler {
		return schtasks.New(schtasks.Config{
			Path:     cfg.SchtasksPath,
			IsAdmin:  isElevated,
			Executor: env.sched,
			Logger:   log,
		})
	}
	runWindow = nil
	audioFs = env.fs
	newAudioOutput = func() player.Output { return drainOutput{} }
	openSystemLog = func(string) (logger.Logger, error) { return env.sysLog, nil }
	installEventSource = func(string) error {
		env.installed++
		return nil
	}
	removeEventSource = func(string) error {
		env.removed++
		return nil
	}
	return env
}

func (env *testEnv) writeSound(t *testing.T, path string) {
	t.Helper()
	f, err := env.fs.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(800, beep.Silence(-1)), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func newContext(app *cli.App, args []string, name string) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}
