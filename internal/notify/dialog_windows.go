// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows message box

//go:build windows

package notify

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK        = 0x00000000
	mbIconError = 0x00000010
)

// showDialog runs a modal MessageBoxW with an error icon
func showDialog(title, message string) error {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, text, caption, mbOK|mbIconError)
	return err
}
