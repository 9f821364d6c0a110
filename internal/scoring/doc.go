// Package scoring is the HTTP client for the password scoring service.
//
// The service exposes two endpoints:
//
//	POST /api/check     {"password": "..."}
//	    -> {"percentage": 57.1, "strength": "Fair", "feedback": ["Add numbers"]}
//	GET  /api/generate[?length=N]
//	    -> {"password": "...", "percentage": 100, "strength": "Very Strong", "feedback": []}
//
// # Usage Example
//
//	client := scoring.NewClient("http://localhost:5000")
//	client.SetTimeout(5 * time.Second)
//
//	a, err := client.Check(ctx, candidate)
//	if err != nil {
//	    fmt.Println(scoring.ShortMessage(err))
//	    return
//	}
//	fmt.Printf("%s (%.0f%%)\n", a.LabelText, a.Percentage)
//
// # Error Handling
//
// Every failure is a *ServiceError carrying an ErrorType: transport
// failures are classified as Network, Timeout, ConnectionRefused, DNS or
// Canceled; non-2xx responses are HTTP errors (with the service's own
// error text when it sends one); undecodable bodies, a missing percentage,
// a percentage outside [0,100] or an empty generated password are Parse
// errors.
//
// The client never retries and never caches. Deciding whether to try
// again is left to the caller.
package scoring
