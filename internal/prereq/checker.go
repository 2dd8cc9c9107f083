// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Preflight checker for the companion script and its interpreter

package prereq

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
)

// Checker verifies what a launch needs without launching
type Checker struct {
	tools    map[string]*Tool
	lookPath func(string) (string, error)
	run      func(name string, args ...string) ([]byte, error)
}

// NewChecker creates a checker using PATH lookup
func NewChecker() *Checker {
	return NewCheckerWithTools(DefaultTools())
}

// NewCheckerWithTools creates a checker with custom tools
func NewCheckerWithTools(tools map[string]*Tool) *Checker {
	return &Checker{
		tools:    tools,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// CheckLaunch checks the working directory, the companion script and the interpreter
func (c *Checker) CheckLaunch(req launcher.Request) *CheckSummary {
	summary := NewCheckSummary()
	summary.AddResult(c.CheckDir("workdir", req.WorkDir))
	summary.AddResult(c.CheckFile("companion", req.Target))
	summary.AddResult(c.CheckTool("python"))
	return summary
}

// CheckDir checks that path exists and is a directory
func (c *Checker) CheckDir(name, path string) CheckResult {
	result := CheckResult{Name: name, Path: path}
	info, err := os.Stat(path)
	if err != nil {
		result.Error = err
		return result
	}
	if !info.IsDir() {
		result.Error = fmt.Errorf("%s is not a directory", path)
		return result
	}
	result.Found = true
	return result
}

// CheckFile checks that path exists and is a regular file
func (c *Checker) CheckFile(name, path string) CheckResult {
	result := CheckResult{Name: name, Path: path}
	info, err := os.Stat(path)
	if err != nil {
		result.Error = err
		return result
	}
	if info.IsDir() {
		result.Error = fmt.Errorf("%s is a directory", path)
		return result
	}
	result.Found = true
	return result
}

// CheckTool checks if a specific tool exists
func (c *Checker) CheckTool(name string) CheckResult {
	result := CheckResult{Name: name}

	tool, ok := c.tools[strings.ToLower(name)]
	if !ok {
		// Unknown tool - try direct command check
		if path, err := c.lookPath(name); err == nil {
			result.Found = true
			result.Path = path
		}
		return result
	}

	for _, command := range append([]string{tool.Command}, tool.Alternatives...) {
		path, err := c.lookPath(command)
		if err != nil {
			continue
		}
		result.Found = true
		result.Path = path
		result.Version = c.getVersion(tool.VersionCmd, command)
		return result
	}

	return result
}

// GetInstallGuide returns installation instructions for a tool
func (c *Checker) GetInstallGuide(name string) string {
	tool := c.tools[strings.ToLower(name)]
	if tool == nil {
		return "No installation guide available for " + name
	}
	return tool.InstallGuide
}

// getVersion runs versionCmd, substituting the resolved command for its first word.
// pythonw has no console, so the version is asked of the console sibling.
func (c *Checker) getVersion(versionCmd, command string) string {
	parts := strings.Fields(versionCmd)
	if len(parts) == 0 {
		return ""
	}
	if command != "pythonw" {
		parts[0] = command
	}

	out, err := c.run(parts[0], parts[1:]...)
	if err != nil {
		return ""
	}

	// Return first line of output, trimmed
	output := strings.TrimSpace(string(out))
	if idx := strings.Index(output, "\n"); idx > 0 {
		output = output[:idx]
	}
	return output
}

// FormatMissing returns a formatted report of missing items with guidance
func (c *Checker) FormatMissing(summary *CheckSummary) string {
	if summary.AllFound {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing prerequisites:\n\n")

	for _, result := range summary.Results {
		if result.Found {
			continue
		}
		sb.WriteString("─────────────────────────────────\n")
		sb.WriteString(result.Name + "\n")
		sb.WriteString("─────────────────────────────────\n")
		if _, isTool := c.tools[result.Name]; isTool {
			sb.WriteString(c.GetInstallGuide(result.Name))
		} else {
			sb.WriteString("Expected at " + result.Path)
			if result.Error != nil {
				sb.WriteString(" (" + result.Error.Error() + ")")
			}
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}
