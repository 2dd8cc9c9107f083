// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Desktop error dialogs through zenity

//go:build !windows

package notify

import (
	"errors"

	"github.com/ncruces/zenity"
)

// showDialog uses osascript on macOS and zenity or kdialog elsewhere.
// Closing the box instead of pressing OK still counts as acknowledged.
func showDialog(title, message string) error {
	err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
