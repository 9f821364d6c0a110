// Package logging provides structured logging for pwcheck.
//
// This package wraps a zap logger with package-level helpers so that every
// other package logs the same way without passing a logger around.
//
// # Silent By Default
//
// Nothing is logged unless a level is requested, either with the
// --log-level flag or the PWCHECK_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(""); err != nil { // reads PWCHECK_LOG_LEVEL
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The terminal UI owns stdout, so it logs to a file instead:
//
//	logging.InitializeWithOutput("debug", "/tmp/pwcheck.log")
//
// # Sensitive Data
//
// Candidate and generated passwords are never passed to the logger. Log
// lengths, generation numbers and status codes instead:
//
//	logging.Debug("Check issued",
//	    zap.Uint64("generation", g),
//	    zap.Int("length", len(candidate)),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and
// SetLogger are meant to be called once during startup.
package logging
