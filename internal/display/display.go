// Package display formats user-facing status messages.
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// Successf prints a green status line.
func Successf(out io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(out, format+"\n", args...)
}

// Warnf prints a yellow status line.
func Warnf(out io.Writer, format string, args ...interface{}) {
	warnColor.Fprintf(out, format+"\n", args...)
}

// Listf prints a plain line, used for list output.
func Listf(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, format+"\n", args...)
}
