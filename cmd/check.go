/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"fmt"

	"github.com/sony-level/minecodes-launcher/internal/launcher"
	"github.com/sony-level/minecodes-launcher/internal/prereq"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report what a launch would use, without launching",
	Long: `Resolve the install directory, show the script path and working
directory a launch would use, and check that the script exists and a
Python interpreter is installed.

Exit status is 0 when everything was found and 1 otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !executeCheck(cmd) {
			return &exitCodeError{code: launcher.ExitFailed}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func executeCheck(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()

	// Phase 1: Resolve
	fmt.Fprintln(out, "[1/3] Resolve")
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  → ✗ %v\n", err)
		return false
	}
	l := launcher.New(&launcher.Config{Layout: cfg.Layout()})
	req, err := l.Prepare()
	if err != nil {
		fmt.Fprintf(out, "  → ✗ %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  → Base:    %s\n", req.BaseDir)
	fmt.Fprintf(out, "  → Target:  %s\n", req.Target)
	fmt.Fprintf(out, "  → Workdir: %s\n", req.WorkDir)

	// Phase 2: Check
	fmt.Fprintln(out, "\n[2/3] Check")
	checker := prereq.NewChecker()
	summary := checker.CheckLaunch(req)
	for _, result := range summary.Results {
		if !result.Found {
			fmt.Fprintf(out, "  → ✗ %s\n", result.Name)
			continue
		}
		line := fmt.Sprintf("  → ✓ %s: %s", result.Name, result.Path)
		if verbose && result.Version != "" {
			line += " (" + result.Version + ")"
		}
		fmt.Fprintln(out, line)
	}

	// Phase 3: Report
	fmt.Fprintln(out, "\n[3/3] Report")
	if summary.AllFound {
		fmt.Fprintln(out, "  → Ready to launch")
		return true
	}
	fmt.Fprint(out, checker.FormatMissing(summary))
	return false
}
