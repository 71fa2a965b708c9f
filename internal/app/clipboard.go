//go:build !js

package app

import "github.com/atotto/clipboard"

func readClipboard() (string, error) { return clipboard.ReadAll() }
