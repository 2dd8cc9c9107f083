// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Optional launcher.yml next to the executable

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the executable's directory when --config is not given
const DefaultFileName = "launcher.yml"

// LauncherConfig holds the launch layout and dialog text
type LauncherConfig struct {
	Subdir          string
	Script          string
	DispatchTimeout time.Duration
	Dialog          DialogConfig
}

// DialogConfig is the text of the failure dialog
type DialogConfig struct {
	Title   string
	Message string
}

type rawConfig struct {
	Subdir          *string        `yaml:"subdir"`
	Script          *string        `yaml:"script"`
	DispatchTimeout *time.Duration `yaml:"dispatch_timeout"`
	Dialog          rawDialog      `yaml:"dialog"`
}

type rawDialog struct {
	Title   *string `yaml:"title"`
	Message *string `yaml:"message"`
}

// Default returns AppDatas/Main.pyw with the fixed dialog text
func Default() *LauncherConfig {
	return &LauncherConfig{
		Subdir:          launcher.DefaultSubdir,
		Script:          launcher.DefaultScript,
		DispatchTimeout: launcher.DefaultDispatchTimeout,
		Dialog: DialogConfig{
			Title:   launcher.DialogTitle,
			Message: launcher.DialogMessage,
		},
	}
}

// Load reads and validates the file at path. A missing file is an error.
func Load(path string) (*LauncherConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}
	return Parse(content, path)
}

// LoadOptional is Load, except a missing file yields the defaults
func LoadOptional(path string) (*LauncherConfig, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath returns launcher.yml inside base
func DefaultPath(base string) string {
	return filepath.Join(base, DefaultFileName)
}

// Parse decodes YAML content over the defaults. name is used in error messages.
func Parse(content []byte, name string) (*LauncherConfig, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawConfig{}
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %q: %w", name, err)
	}

	applyRawConfig(cfg, raw)

	if err := cfg.Layout().Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", name, err)
	}
	if cfg.DispatchTimeout <= 0 {
		return nil, fmt.Errorf("invalid dispatch_timeout %s in %q, expected > 0", cfg.DispatchTimeout, name)
	}

	return cfg, nil
}

func applyRawConfig(cfg *LauncherConfig, raw rawConfig) {
	if raw.Subdir != nil {
		cfg.Subdir = strings.TrimSpace(*raw.Subdir)
	}
	if raw.Script != nil {
		cfg.Script = strings.TrimSpace(*raw.Script)
	}
	if raw.DispatchTimeout != nil {
		cfg.DispatchTimeout = *raw.DispatchTimeout
	}
	if raw.Dialog.Title != nil && strings.TrimSpace(*raw.Dialog.Title) != "" {
		cfg.Dialog.Title = *raw.Dialog.Title
	}
	if raw.Dialog.Message != nil && strings.TrimSpace(*raw.Dialog.Message) != "" {
		cfg.Dialog.Message = *raw.Dialog.Message
	}
}

// Layout returns the configured launch layout
func (c *LauncherConfig) Layout() launcher.Layout {
	return launcher.Layout{
		Subdir: c.Subdir,
		Script: c.Script,
	}
}
