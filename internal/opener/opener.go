// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Default-handler dispatch for the current platform

package opener

import (
	"context"

	"go.uber.org/zap"
)

// Shell opens files with whatever application the host associates with them
type Shell struct {
	logger *zap.Logger
}

// New creates a Shell opener. A nil logger disables logging.
func New(logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{logger: logger}
}

// Func adapts a plain function to the launcher's Opener interface
type Func func(ctx context.Context, path, workDir string) error

// Open calls f
func (f Func) Open(ctx context.Context, path, workDir string) error {
	return f(ctx, path, workDir)
}

// dispatcherCommand returns the desktop program that performs
// default-handler dispatch on goos, with its arguments for path.
func dispatcherCommand(goos, path string) (string, []string) {
	if goos == "darwin" {
		return "open", []string{path}
	}
	return "xdg-open", []string{path}
}
