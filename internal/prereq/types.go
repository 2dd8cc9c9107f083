// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Preflight types and interpreter definitions

package prereq

// Tool represents a program the companion script needs
type Tool struct {
	Name         string   // Tool name
	Command      string   // Preferred command
	VersionCmd   string   // Command to get version
	Alternatives []string // Other command names for the same tool
	InstallGuide string   // Installation instructions
}

// DefaultTools returns the interpreters able to run a .pyw script
func DefaultTools() map[string]*Tool {
	return map[string]*Tool{
		"python": {
			Name:         "python",
			Command:      "pythonw",
			VersionCmd:   "python --version",
			Alternatives: []string{"py", "python3", "python"},
			InstallGuide: `Install Python and associate .pyw files with pythonw:
  Windows: https://www.python.org/downloads/ (keep "py launcher" and file associations checked)
  macOS:   brew install python
  Ubuntu:  sudo apt install python3 python3-tk
  Fedora:  sudo dnf install python3 python3-tkinter`,
		},
	}
}

// CheckResult contains the result of one check
type CheckResult struct {
	Name    string // Item name
	Found   bool   // Whether the item was found
	Version string // Detected version (tools only)
	Path    string // Resolved path
	Error   error  // Error during check (if any)
}

// CheckSummary contains results for all checks
type CheckSummary struct {
	Results      []CheckResult // Individual results
	AllFound     bool          // Whether everything was found
	MissingItems []string      // Names of missing items
}

// NewCheckSummary creates a new check summary
func NewCheckSummary() *CheckSummary {
	return &CheckSummary{
		Results:      []CheckResult{},
		AllFound:     true,
		MissingItems: []string{},
	}
}

// AddResult adds a check result to the summary
func (s *CheckSummary) AddResult(result CheckResult) {
	s.Results = append(s.Results, result)
	if !result.Found {
		s.AllFound = false
		s.MissingItems = append(s.MissingItems, result.Name)
	}
}
