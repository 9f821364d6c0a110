// Package urls provides centralized constants for the project URLs used
// throughout the application.
//
// Usage:
//
//	import "github.com/rihenm13-code/password-checker/internal/urls"
//
//	fmt.Printf("To start the scoring service, see: %s\n", urls.ServiceSetup)
package urls
