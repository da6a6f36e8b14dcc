package service

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/warpdl/daily420/common"
)

// Injected for tests.
var (
	executable  = os.Executable
	evalSymlink = filepath.EvalSymlinks
	statFile    = os.Stat
	currentUser = user.Current
)

// ResolveCommand returns the command line a scheduled job runs: the
// current executable, quoted, followed by the play flag.
//
// The path is resolved when alerts are enabled. If the binary is moved
// afterwards the jobs keep pointing at the old location until alerts are
// enabled again.
func ResolveCommand() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := evalSymlink(exe); err == nil {
		exe = resolved
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return `"` + windowless(exe) + `" ` + common.PlayFlag, nil
}

// windowless prefers a sibling "<name>w.exe" build (linked with
// -H windowsgui) so the alert does not open a console window.
func windowless(exe string) string {
	ext := filepath.Ext(exe)
	if !strings.EqualFold(ext, ".exe") {
		return exe
	}
	base := strings.TrimSuffix(exe, ext)
	if strings.HasSuffix(strings.ToLower(base), "w") {
		return exe
	}
	candidate := base + "w" + ext
	if fi, err := statFile(candidate); err == nil && !fi.IsDir() {
		return candidate
	}
	return exe
}

// ResolveUser returns the /RU principal: the current OS user, or SYSTEM
// if it cannot be determined.
func ResolveUser() string {
	u, err := currentUser()
	if err != nil || u.Username == "" {
		return common.FallbackUser
	}
	return u.Username
}
