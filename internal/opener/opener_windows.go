// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows default-handler dispatch through ShellExecuteW

//go:build windows

package opener

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	shell32           = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// Open runs ShellExecuteW with the "open" verb, workDir as the working
// directory and a normal window. The raw return value is interpreted with
// the ShellExecute threshold convention.
func (s *Shell) Open(ctx context.Context, path, workDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := procShellExecuteW.Find(); err != nil {
		return fmt.Errorf("failed to load ShellExecuteW: %w", err)
	}

	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("invalid target path: %w", err)
	}
	dir, err := windows.UTF16PtrFromString(workDir)
	if err != nil {
		return fmt.Errorf("invalid working directory: %w", err)
	}

	ret, _, _ := procShellExecuteW.Call(
		0,
		uintptr(unsafe.Pointer(verb)),
		uintptr(unsafe.Pointer(file)),
		0,
		uintptr(unsafe.Pointer(dir)),
		uintptr(windows.SW_SHOWNORMAL),
	)
	s.logger.Debug("ShellExecuteW returned",
		zap.String("path", path),
		zap.String("workdir", workDir),
		zap.Uint64("status", uint64(ret)))

	return launcher.InterpretStatus(ret)
}
