package common

import (
	"errors"
	"flag"
	"testing"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
)

func newTestContext() *cli.Context {
	app := cli.NewApp()
	app.Name = "daily420"
	app.HelpName = "daily420"
	app.Version = "test"
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: "status"}
	return ctx
}

func stubHelp(t *testing.T) (appCalls *int, cmdCalls *int) {
	t.Helper()
	var a, c int
	origApp, origCmd := showAppHelpAndExit, showCommandHelp
	showAppHelpAndExit = func(*cli.Context, int) { a++ }
	showCommandHelp = func(*cli.Context, string) error {
		c++
		return nil
	}
	t.Cleanup(func() {
		showAppHelpAndExit, showCommandHelp = origApp, origCmd
	})
	return &a, &c
}

func TestInitPlaybackBar(t *testing.T) {
	p := mpb.New()
	bar := InitPlaybackBar(p, "420audio.mp3")
	if bar == nil {
		t.Fatal("expected bar")
	}
	bar.SetTotal(100, false)
	bar.SetCurrent(100)
	p.Wait()
	if !bar.Completed() {
		t.Error("expected bar to complete at its total")
	}
}

func TestHelp(t *testing.T) {
	appCalls, cmdCalls := stubHelp(t)
	ctx := newTestContext()
	if err := Help(ctx); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if *appCalls != 1 || *cmdCalls != 0 {
		t.Fatalf("app=%d cmd=%d", *appCalls, *cmdCalls)
	}

	set := flag.NewFlagSet("help", flag.ContinueOnError)
	_ = set.Parse([]string{"enable"})
	ctx = cli.NewContext(ctx.App, set, nil)
	if err := Help(ctx); err != nil {
		t.Fatalf("Help enable: %v", err)
	}
	if *cmdCalls != 1 {
		t.Fatalf("expected command help, got %d calls", *cmdCalls)
	}
}

func TestGetVersion(t *testing.T) {
	VersionCmdStr = "daily420 1.0"
	if err := GetVersion(newTestContext()); err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
}

func TestPrintRuntimeErr(t *testing.T) {
	PrintRuntimeErr(nil, "status", nil)
	PrintRuntimeErr(nil, "status", errors.New("boom"))
	PrintRuntimeErr(newTestContext(), "status", errors.New("boom"))
}

func TestPrintErrWithHelp(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		appWant int
	}{
		{name: "nil", err: nil, appWant: 0},
		{name: "plain", err: errors.New("oops"), appWant: 1},
		{name: "help requested", err: errors.New("flag: help requested"), appWant: 1},
		{name: "version", err: errors.New("flag provided but not defined: -version"), appWant: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appCalls, _ := stubHelp(t)
			if err := PrintErrWithHelp(newTestContext(), tt.err); err != nil {
				t.Fatalf("PrintErrWithHelp: %v", err)
			}
			if *appCalls != tt.appWant {
				t.Errorf("app help calls = %d, want %d", *appCalls, tt.appWant)
			}
		})
	}
}

func TestPrintErrWithCmdHelp_ShowCommandHelpError(t *testing.T) {
	orig := showCommandHelp
	showCommandHelp = func(*cli.Context, string) error {
		return errors.New("boom")
	}
	defer func() { showCommandHelp = orig }()

	if err := PrintErrWithCmdHelp(newTestContext(), errors.New("oops")); err != nil {
		t.Fatalf("PrintErrWithCmdHelp: %v", err)
	}
}

func TestUsageErrorCallback(t *testing.T) {
	appCalls, cmdCalls := stubHelp(t)
	ctx := newTestContext()
	if err := UsageErrorCallback(ctx, errors.New("bad flag"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if *cmdCalls != 1 {
		t.Fatalf("expected command help, got %d", *cmdCalls)
	}

	ctx.Command = cli.Command{}
	if err := UsageErrorCallback(ctx, errors.New("bad flag"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if *appCalls != 1 {
		t.Fatalf("expected app help, got %d", *appCalls)
	}
}
