package service

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"testing"
	"time"

	"github.com/warpdl/daily420/common"
)

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o755 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func stubExecutable(t *testing.T, exe string, existing ...string) {
	t.Helper()
	oldExe, oldEval, oldStat := executable, evalSymlink, statFile
	t.Cleanup(func() { executable, evalSymlink, statFile = oldExe, oldEval, oldStat })

	executable = func() (string, error) { return exe, nil }
	evalSymlink = func(p string) (string, error) { return p, nil }
	files := make(map[string]bool)
	for _, f := range existing {
		files[f] = true
	}
	statFile = func(p string) (os.FileInfo, error) {
		if files[p] {
			return fakeFileInfo{name: filepath.Base(p)}, nil
		}
		return nil, fs.ErrNotExist
	}
}

func TestResolveCommand(t *testing.T) {
	exe := filepath.Join(t.TempDir(), "daily420.exe")
	stubExecutable(t, exe)

	got, err := ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand() error: %v", err)
	}
	want := `"` + exe + `" ` + common.PlayFlag
	if got != want {
		t.Errorf("ResolveCommand() = %q, want %q", got, want)
	}
}

func TestResolveCommand_PrefersWindowlessBuild(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "daily420.exe")
	exeW := filepath.Join(dir, "daily420w.exe")
	stubExecutable(t, exe, exeW)

	got, err := ResolveCommand()
	if err != nil {
		t.Fatalf("ResolveCommand() error: %v", err)
	}
	if want := `"` + exeW + `" --play`; got != want {
		t.Errorf("ResolveCommand() = %q, want %q", got, want)
	}
}

func TestWindowless(t *testing.T) {
	dir := t.TempDir()
	stubExecutable(t, "", filepath.Join(dir, "daily420w.exe"))

	tests := []struct {
		in, want string
	}{
		{filepath.Join(dir, "daily420.exe"), filepath.Join(dir, "daily420w.exe")},
		{filepath.Join(dir, "daily420w.exe"), filepath.Join(dir, "daily420w.exe")},
		{filepath.Join(dir, "other.exe"), filepath.Join(dir, "other.exe")},
		{filepath.Join(dir, "daily420"), filepath.Join(dir, "daily420")},
	}
	for _, tt := range tests {
		if got := windowless(tt.in); got != tt.want {
			t.Errorf("windowless(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCommand_ExecutableError(t *testing.T) {
	old := executable
	executable = func() (string, error) { return "", errors.New("no proc") }
	defer func() { executable = old }()

	if _, err := ResolveCommand(); err == nil {
		t.Error("expected error")
	}
}

func TestResolveUser(t *testing.T) {
	old := currentUser
	defer func() { currentUser = old }()

	currentUser = func() (*user.User, error) { return &user.User{Username: `DESKTOP\alex`}, nil }
	if got := ResolveUser(); got != `DESKTOP\alex` {
		t.Errorf("ResolveUser() = %q", got)
	}

	currentUser = func() (*user.User, error) { return nil, errors.New("lookup failed") }
	if got := ResolveUser(); got != common.FallbackUser {
		t.Errorf("ResolveUser() = %q, want %q", got, common.FallbackUser)
	}
}
