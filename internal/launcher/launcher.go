// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Self-relative launcher: locate self, derive paths, delegate, report

package launcher

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultDispatchTimeout bounds how long the host dispatcher may take to accept the request
const DefaultDispatchTimeout = 10 * time.Second

// State is a step of a single launch
type State int

const (
	StateStart State = iota
	StateResolvedBase
	StatePathsBuilt
	StateLaunched
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateResolvedBase:
		return "resolved-base"
	case StatePathsBuilt:
		return "paths-built"
	case StateLaunched:
		return "launched"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config configures a Launcher
type Config struct {
	Layout          Layout
	Opener          Opener
	Notifier        Notifier
	Logger          *zap.Logger
	DialogTitle     string
	DialogMessage   string
	DispatchTimeout time.Duration
	Executable      func() (string, error) // defaults to os.Executable
}

// Result is the outcome of one Execute call
type Result struct {
	State    State
	Request  Request
	Err      error
	ExitCode int
}

// Launcher runs the resolve, build, open sequence once per call
type Launcher struct {
	config *Config
	logger *zap.Logger
}

// New creates a launcher, filling unset fields with the fixed defaults
func New(config *Config) *Launcher {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Layout.Subdir == "" {
		cfg.Layout.Subdir = DefaultSubdir
	}
	if cfg.Layout.Script == "" {
		cfg.Layout.Script = DefaultScript
	}
	if cfg.DialogTitle == "" {
		cfg.DialogTitle = DialogTitle
	}
	if cfg.DialogMessage == "" {
		cfg.DialogMessage = DialogMessage
	}
	if cfg.DispatchTimeout <= 0 {
		cfg.DispatchTimeout = DefaultDispatchTimeout
	}
	if cfg.Executable == nil {
		cfg.Executable = os.Executable
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Launcher{
		config: &cfg,
		logger: logger,
	}
}

// Prepare resolves the base directory and builds the launch request
func (l *Launcher) Prepare() (Request, error) {
	base, err := resolveBaseDirectory(l.config.Executable)
	if err != nil {
		return Request{}, err
	}
	if err := l.config.Layout.Validate(); err != nil {
		return Request{}, err
	}
	return l.config.Layout.Build(base), nil
}

// Launch asks the host to open req.Target with req.WorkDir as working directory.
// It returns once the host has accepted or refused the request.
func (l *Launcher) Launch(ctx context.Context, req Request) error {
	if l.config.Opener == nil {
		return &LaunchError{Target: req.Target, Err: errors.New("no opener configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, l.config.DispatchTimeout)
	defer cancel()

	err := l.config.Opener.Open(ctx, req.Target, req.WorkDir)
	if err == nil {
		return nil
	}

	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		if launchErr.Target == "" {
			launchErr.Target = req.Target
		}
		return launchErr
	}
	return &LaunchError{Target: req.Target, Err: err}
}

// Execute walks Start → ResolvedBase → PathsBuilt → Launched → {Success, Failed}.
// Failures are reported through the notifier exactly once; nothing is retried.
func (l *Launcher) Execute(ctx context.Context) *Result {
	result := &Result{State: StateStart}

	base, err := resolveBaseDirectory(l.config.Executable)
	if err != nil {
		l.logger.Error("resolve executable directory", zap.Error(err))
		return l.fail(result, err, l.config.DialogMessage+"\n\n"+err.Error())
	}
	result.State = StateResolvedBase
	l.logger.Debug("base directory resolved", zap.String("base", base))

	if err := l.config.Layout.Validate(); err != nil {
		l.logger.Error("invalid launch layout", zap.Error(err))
		return l.fail(result, err, l.config.DialogMessage+"\n\n"+err.Error())
	}

	result.Request = l.config.Layout.Build(base)
	result.State = StatePathsBuilt
	l.logger.Debug("launch paths built",
		zap.String("target", result.Request.Target),
		zap.String("workdir", result.Request.WorkDir))

	err = l.Launch(ctx, result.Request)
	result.State = StateLaunched
	if err != nil {
		fields := []zap.Field{zap.String("target", result.Request.Target), zap.Error(err)}
		var launchErr *LaunchError
		if errors.As(err, &launchErr) && launchErr.Err == nil {
			fields = append(fields,
				zap.Uint64("status", uint64(launchErr.Status)),
				zap.String("reason", StatusReason(launchErr.Status)))
		}
		l.logger.Error("open request failed", fields...)
		return l.fail(result, err, l.config.DialogMessage)
	}

	l.logger.Info("open request accepted", zap.String("target", result.Request.Target))
	result.State = StateSuccess
	result.ExitCode = ExitOK
	return result
}

// Run executes one launch and returns the process exit code
func (l *Launcher) Run(ctx context.Context) int {
	return l.Execute(ctx).ExitCode
}

func (l *Launcher) fail(result *Result, err error, message string) *Result {
	result.State = StateFailed
	result.Err = err
	result.ExitCode = ExitFailed
	if l.config.Notifier != nil {
		l.config.Notifier.Fatal(l.config.DialogTitle, message)
	}
	return result
}
