// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Fatal notification surfaces

package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Console prints fatal messages to a writer, for headless use
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a console notifier writing to w (stderr when nil)
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{w: w}
}

// Fatal writes "title: message"
func (c *Console) Fatal(title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s: %s\n", title, message)
}

// Dialog shows a blocking error box, falling back to the console when no
// dialog can be shown
type Dialog struct {
	logger   *zap.Logger
	fallback *Console
	show     func(title, message string) error
}

// NewDialog creates a dialog notifier. A nil logger disables logging.
func NewDialog(logger *zap.Logger) *Dialog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dialog{
		logger:   logger,
		fallback: NewConsole(os.Stderr),
		show:     showDialog,
	}
}

// Fatal shows the error box and waits until the user dismisses it
func (d *Dialog) Fatal(title, message string) {
	if err := d.show(title, message); err != nil {
		d.logger.Warn("dialog failed", zap.Error(err))
		d.fallback.Fatal(title, message)
	}
}
