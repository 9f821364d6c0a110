// Package discovery finds password scoring services on the local network.
//
// Scoring services advertise themselves over multicast DNS with the
// "_pwcheck._tcp" service type. TXT records may carry extra hints:
//
//	scheme=https     use TLS (default http)
//	path=/pw         prefix in front of /api/check and /api/generate
//	version=1.2.0    service version, shown by "pwcheck scan"
//
// # Usage Example
//
//	scanner := discovery.NewScanner()
//	scanner.Timeout = 3 * time.Second
//	services, err := scanner.Scan(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, svc := range services {
//	    fmt.Println(svc.Instance, svc.BaseURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Services must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
