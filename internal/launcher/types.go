// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Launcher types, error kinds and host status codes

package launcher

import (
	"context"
	"errors"
	"fmt"
)

const (
	// DefaultSubdir is the directory next to the executable holding the companion script
	DefaultSubdir = "AppDatas"
	// DefaultScript is the companion script name inside DefaultSubdir
	DefaultScript = "Main.pyw"

	// DialogTitle is the fixed title of the failure dialog
	DialogTitle = "启动失败"
	// DialogMessage is the fixed body of the failure dialog
	DialogMessage = "无法启动 MineCodes，请确保已安装 Python 并正确关联 .pyw 文件。"
)

// Exit codes returned by Run
const (
	ExitOK     = 0
	ExitFailed = 1
)

var (
	// ErrLaunchFailed is matched by every *LaunchError
	ErrLaunchFailed = errors.New("launch failed")
	// ErrResolveBase means the executable's own location could not be determined
	ErrResolveBase = errors.New("cannot resolve executable directory")
)

// Request is built once per invocation and consumed by the open request.
type Request struct {
	BaseDir string // executable directory, trailing separator kept
	Target  string // BaseDir/Subdir/Script
	WorkDir string // BaseDir/Subdir
}

// LaunchError reports that the host could not open the target
type LaunchError struct {
	Target string
	Status uintptr // host status code, 0 when the host exposes none
	Err    error
}

func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("launch %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("launch %s: %s", e.Target, StatusReason(e.Status))
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLaunchFailed) hold for any LaunchError
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// Opener hands a file to the host's default handler for the "open" verb.
type Opener interface {
	Open(ctx context.Context, path, workDir string) error
}

// Notifier surfaces a blocking, user-acknowledged fatal message.
type Notifier interface {
	Fatal(title, message string)
}

// ShellExecute status codes at or below the failure threshold
const (
	StatusOutOfResources   uintptr = 0
	StatusFileNotFound     uintptr = 2
	StatusPathNotFound     uintptr = 3
	StatusAccessDenied     uintptr = 5
	StatusOutOfMemory      uintptr = 8
	StatusBadFormat        uintptr = 11
	StatusShare            uintptr = 26
	StatusAssocIncomplete  uintptr = 27
	StatusDDETimeout       uintptr = 28
	StatusDDEFail          uintptr = 29
	StatusDDEBusy          uintptr = 30
	StatusNoAssociation    uintptr = 31
	StatusDLLNotFound      uintptr = 32
	StatusFailureThreshold uintptr = 32
)

var statusReasons = map[uintptr]string{
	StatusOutOfResources:  "out of memory or resources",
	StatusFileNotFound:    "file not found",
	StatusPathNotFound:    "path not found",
	StatusBadFormat:       "invalid executable format",
	StatusAccessDenied:    "access denied",
	StatusOutOfMemory:     "out of memory",
	StatusShare:           "sharing violation",
	StatusAssocIncomplete: "file association incomplete",
	StatusDDETimeout:      "DDE transaction timed out",
	StatusDDEFail:         "DDE transaction failed",
	StatusDDEBusy:         "DDE busy",
	StatusNoAssociation:   "no application associated with this file type",
	StatusDLLNotFound:     "required DLL not found",
}
