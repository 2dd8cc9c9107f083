// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Host status interpretation

package launcher

import "fmt"

// InterpretStatus applies the ShellExecute convention: a returned value at or
// below 32 is a failure, anything above is an instance handle meaning success.
func InterpretStatus(status uintptr) error {
	if status > StatusFailureThreshold {
		return nil
	}
	return &LaunchError{Status: status}
}

// StatusReason describes a failing status code for logs
func StatusReason(status uintptr) string {
	if reason, ok := statusReasons[status]; ok {
		return reason
	}
	if status > StatusFailureThreshold {
		return "ok"
	}
	return fmt.Sprintf("error code %d", status)
}
