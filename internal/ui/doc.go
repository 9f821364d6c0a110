// Package ui provides styled output for the one-shot pwcheck commands.
//
// Components follow a "render once and exit" pattern: they produce a
// string with Lipgloss and are written through a Printer. The interactive
// screen lives in package tui.
//
//   - Header: command banner showing the operation and its parameters
//   - Meter: strength bar, percentage, label and feedback list
//   - Result: success, failure or warning boxes
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintAssessment(assessment)
//	p.PrintSuccess("Password copied", ui.Param{Key: "Length", Value: "16"})
//
// # Logging Integration
//
// Logging is controlled by PWCHECK_LOG_LEVEL or --log-level. When unset,
// zap logging is silent so the styled output is displayed cleanly.
package ui
