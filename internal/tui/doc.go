// Package tui implements the interactive password checker screen.
//
// The screen is a Bubble Tea program. Keystrokes are forwarded to a
// controller.Controller, which talks to the scoring service and pushes
// results back through a Viewport. The Viewport never touches the
// program directly: it records the new values and signals a buffered
// channel, and a subscription command turns that signal into a redraw
// message on the program's own goroutine.
//
// Notifications from notify.Center use the same signal, so the toasts
// animate through their phases without a ticker.
//
// # Key Bindings
//
//	ctrl+g   generate a password
//	ctrl+y   copy the input (only while a password is entered)
//	ctrl+p   copy the generated password (only while the panel is shown)
//	ctrl+t   show or hide the password
//	f1       toggle the full help
//	esc      quit (ctrl+c also works)
package tui
