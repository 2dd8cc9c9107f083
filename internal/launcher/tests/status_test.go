// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Host status interpretation tests

package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
)

func TestInterpretStatus(t *testing.T) {
	tests := []struct {
		status  uintptr
		wantErr bool
	}{
		{0, true},
		{2, true},
		{5, true},
		{31, true},
		{32, true},
		{33, false},
		{42, false},
		{0x7ff60000, false},
	}

	for _, tt := range tests {
		err := launcher.InterpretStatus(tt.status)
		if (err != nil) != tt.wantErr {
			t.Errorf("InterpretStatus(%d) error = %v, wantErr %v", tt.status, err, tt.wantErr)
			continue
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, launcher.ErrLaunchFailed) {
			t.Errorf("InterpretStatus(%d) = %v, want ErrLaunchFailed", tt.status, err)
		}
		var launchErr *launcher.LaunchError
		if !errors.As(err, &launchErr) || launchErr.Status != tt.status {
			t.Errorf("InterpretStatus(%d) should carry its status, got %v", tt.status, err)
		}
	}
}

func TestStatusReason(t *testing.T) {
	if got := launcher.StatusReason(launcher.StatusNoAssociation); !strings.Contains(got, "associated") {
		t.Errorf("StatusReason(31) = %q", got)
	}
	if got := launcher.StatusReason(launcher.StatusFileNotFound); got != "file not found" {
		t.Errorf("StatusReason(2) = %q", got)
	}
	if got := launcher.StatusReason(17); got != "error code 17" {
		t.Errorf("StatusReason(17) = %q", got)
	}
	if got := launcher.StatusReason(33); got != "ok" {
		t.Errorf("StatusReason(33) = %q", got)
	}
}

func TestLaunchErrorMessage(t *testing.T) {
	err := &launcher.LaunchError{Target: "C:\\app\\AppDatas\\Main.pyw", Status: launcher.StatusNoAssociation}
	if !strings.Contains(err.Error(), "Main.pyw") || !strings.Contains(err.Error(), "associated") {
		t.Errorf("Error() = %q", err.Error())
	}

	cause := errors.New("xdg-open failed")
	wrapped := &launcher.LaunchError{Target: "/app/AppDatas/Main.pyw", Err: cause}
	if !errors.Is(wrapped, cause) {
		t.Error("LaunchError should unwrap to its cause")
	}
	if !errors.Is(wrapped, launcher.ErrLaunchFailed) {
		t.Error("LaunchError should match ErrLaunchFailed")
	}
}
