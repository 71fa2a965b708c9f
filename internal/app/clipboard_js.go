//go:build js

package app

import "errors"

// The browser only hands out clipboard contents through paste events.
func readClipboard() (string, error) { return "", errors.New("clipboard unavailable in the browser") }
