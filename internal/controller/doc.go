// Package controller keeps the password strength display in step with the
// scoring service.
//
// The Controller receives three kinds of user events (the password changed,
// a password was requested, a copy was requested), runs the matching
// service or clipboard call on its own goroutine, and applies the result to
// an injected View.
//
// # Ordering
//
// Responses can arrive in any order. Each event increments a generation
// counter and the request it issues remembers the value it saw. When the
// response arrives, it is applied only if that value is still the current
// generation:
//
//	PasswordChanged("a")   -> generation 1, check #1 in flight
//	PasswordChanged("ab")  -> generation 2, check #2 in flight
//	check #2 resolves      -> 2 == 2, applied
//	check #1 resolves      -> 1 != 2, dropped
//
// Clearing the input bumps the generation too, so a check still in flight
// can never bring back a result for text that is no longer there.
//
// # Failures
//
// A failed check replaces the feedback list with a single warning and
// leaves everything else as it was. A failed generate or copy shows an
// error notification. Stale results are dropped without any report.
package controller
