// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Base directory discovery and launch path composition

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLayout is returned for a layout that is absolute or leaves the base directory
var ErrInvalidLayout = errors.New("invalid launch layout")

// Layout names the companion script relative to the base directory
type Layout struct {
	Subdir string // directory next to the executable, also the working directory
	Script string // script file inside Subdir
}

// DefaultLayout returns AppDatas/Main.pyw
func DefaultLayout() Layout {
	return Layout{
		Subdir: DefaultSubdir,
		Script: DefaultScript,
	}
}

// Validate rejects empty, absolute and escaping components
func (l Layout) Validate() error {
	if err := validateComponent("subdir", l.Subdir); err != nil {
		return err
	}
	return validateComponent("script", l.Script)
}

func validateComponent(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidLayout, name)
	}
	if filepath.IsAbs(value) || filepath.VolumeName(value) != "" || strings.HasPrefix(value, "/") || strings.HasPrefix(value, `\`) {
		return fmt.Errorf("%w: %s %q must be relative", ErrInvalidLayout, name, value)
	}
	clean := filepath.Clean(filepath.FromSlash(value))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s %q leaves the install directory", ErrInvalidLayout, name, value)
	}
	return nil
}

// Build composes the launch request for base. Pure; the filesystem is not touched.
func (l Layout) Build(base string) Request {
	workDir := filepath.Join(base, filepath.FromSlash(l.Subdir))
	return Request{
		BaseDir: base,
		Target:  filepath.Join(workDir, filepath.FromSlash(l.Script)),
		WorkDir: workDir,
	}
}

// BuildPaths composes the default AppDatas/Main.pyw request for base
func BuildPaths(base string) Request {
	return DefaultLayout().Build(base)
}

// BaseDirectoryOf strips the executable name from exePath and keeps a trailing separator
func BaseDirectoryOf(exePath string) string {
	dir := filepath.Dir(exePath)
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}

// ResolveBaseDirectory returns the running executable's directory, trailing separator kept
func ResolveBaseDirectory() (string, error) {
	return resolveBaseDirectory(os.Executable)
}

func resolveBaseDirectory(executable func() (string, error)) (string, error) {
	exePath, err := executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolveBase, err)
	}
	if exePath == "" {
		return "", fmt.Errorf("%w: empty executable path", ErrResolveBase)
	}
	return BaseDirectoryOf(exePath), nil
}
