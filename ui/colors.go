package ui

import "runtime"

// ANSI Color codes
const (
	colorReset = "\033[0m"

	colorBrightRed   = "\033[91m"
	colorBrightGreen = "\033[92m"
)

// Colorize wraps text in the given color. Windows consoles get plain text.
func Colorize(text, color string) string {
	if runtime.GOOS == "windows" {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string   { return Colorize(text, colorBrightRed) }
func BrightGreen(text string) string { return Colorize(text, colorBrightGreen) }
