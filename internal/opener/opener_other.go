// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Default-handler dispatch through open(1) and xdg-open(1)

//go:build !windows

package opener

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// dispatchWaitDelay bounds how long stderr is drained after the dispatcher
// exits. Applications it starts inherit the pipe and may keep it open.
const dispatchWaitDelay = time.Second

// Open hands path to the desktop's dispatcher with workDir as its working
// directory. Only the dispatcher is waited on; the application it starts is not.
func (s *Shell) Open(ctx context.Context, path, workDir string) error {
	name, args := dispatcherCommand(runtime.GOOS, path)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = dispatchWaitDelay

	s.logger.Debug("dispatching",
		zap.String("dispatcher", name),
		zap.String("path", path),
		zap.String("workdir", workDir))

	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// The dispatcher exited 0; only the launched application still holds stderr.
		s.logger.Debug("dispatcher exited, handler still running", zap.String("dispatcher", name))
		return nil
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
