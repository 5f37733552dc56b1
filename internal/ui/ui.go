// Package ui holds the small set of color helpers the CLI and REPL use to
// format results and errors, grounded on the teacher's
// color.New(...).SprintFunc() convention.
package ui

import "github.com/fatih/color"

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Ok formats a successful result line: the value, then the bold type.
func Ok(typeText, valueText string) string {
	return Green("=> ") + valueText + Cyan(" : ") + Bold(typeText)
}

// Err formats an error line for terminal display.
func Err(kind, message string) string {
	return Red("error") + Yellow("["+kind+"]") + ": " + message
}
