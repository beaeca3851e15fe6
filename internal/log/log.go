// Package log prints colored diagnostics.
package log

import (
	"io"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()

// ErrorMsg prints an error line to w in red.
func ErrorMsg(w io.Writer, format string, a ...interface{}) {
	red(w, "[!] "+format+"\n", a...)
}

// InfoMsg prints an informational line to w in blue.
func InfoMsg(w io.Writer, format string, a ...interface{}) {
	blue(w, "[+] "+format+"\n", a...)
}

// DisableColor turns off escape sequences for all subsequent messages.
func DisableColor() {
	color.NoColor = true
}
