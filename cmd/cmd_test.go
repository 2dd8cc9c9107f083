// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Command wiring tests

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
	"github.com/spf13/cobra"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		verbose = false
		consoleOnly = false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "minecodes "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestCheckCommand_MissingCompanion(t *testing.T) {
	// The test binary's directory has no AppDatas/Main.pyw next to it.
	out, err := runRoot(t, "check")

	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) || exitErr.code != 1 {
		t.Fatalf("check error = %v, want exit status 1", err)
	}
	for _, want := range []string{"[1/3] Resolve", "Target:", filepath.Join("AppDatas", "Main.pyw"), "✗ companion", "Missing prerequisites"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckCommand_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yml")
	if err := os.WriteFile(path, []byte("subdir: /abs\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := runRoot(t, "check", "--config", path)

	if err == nil {
		t.Fatal("check should fail with an invalid config")
	}
	if !strings.Contains(out, "must be relative") {
		t.Errorf("output = %q", out)
	}
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yml")
	t.Cleanup(func() { configPath = "" })

	if _, err := loadConfig(); err == nil {
		t.Error("an explicit --config that does not exist should fail")
	}
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Subdir != "AppDatas" || cfg.Script != "Main.pyw" {
		t.Errorf("layout = %q/%q", cfg.Subdir, cfg.Script)
	}
}

func TestExitCodeError(t *testing.T) {
	err := &exitCodeError{code: 1}
	if err.Error() != "exit status 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestMousetrapDisabled(t *testing.T) {
	// Double-clicking the launcher in Explorer must reach the launch, not cobra's help text.
	if cobra.MousetrapHelpText != "" {
		t.Errorf("MousetrapHelpText = %q, want empty", cobra.MousetrapHelpText)
	}
}

func TestRootCommand_BadConfigReportsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yml")
	if err := os.WriteFile(path, []byte("script: ../../escape.pyw\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := runRoot(t, "--console", "--config", path)

	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) || exitErr.code != launcher.ExitFailed {
		t.Fatalf("root error = %v, want exit status 1", err)
	}
	if !strings.HasPrefix(out, launcher.DialogTitle+": "+launcher.DialogMessage) {
		t.Errorf("output = %q, want fatal notice", out)
	}
	if !strings.Contains(out, "leaves the install directory") {
		t.Errorf("output = %q, want the config error", out)
	}
}

func TestRootCommand_IgnoresArgsAndUnknownFlags(t *testing.T) {
	// Nothing sits next to the test binary, so the launch itself fails and
	// reports through the console notifier; argument parsing must not.
	out, err := runRoot(t, "--console", "C:\\Users\\me\\file.txt", "second", "--from-shell=1")

	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("root error = %v, want the launch exit status, not a usage error", err)
	}
	if exitErr.code != launcher.ExitFailed {
		t.Errorf("exit code = %d, want 1", exitErr.code)
	}
	if !strings.Contains(out, launcher.DialogTitle+": "+launcher.DialogMessage) {
		t.Errorf("output = %q, want the launch failure notice", out)
	}
}
