package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Service represents a scoring service discovered on the network
type Service struct {
	// Instance is the advertised instance name (e.g., "office-checker")
	Instance string

	// Hostname is the mDNS hostname (e.g., "checker.local.")
	Hostname string

	// IP is the address to connect to, IPv4 preferred
	IP string

	// Port is the HTTP port (typically 5000)
	Port int

	// Metadata contains the mDNS TXT record data.
	// Recognised keys: "scheme", "path", "version"
	Metadata map[string]string

	// DiscoveredAt is when the service was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("pwcheck service %q (%s) at %s", s.Instance, s.Hostname, s.BaseURL())
}

// BaseURL returns the URL the scoring client should use
func (s *Service) BaseURL() string {
	scheme := s.GetMetadata("scheme")
	if scheme != "https" {
		scheme = "http"
	}
	path := strings.TrimSuffix(s.GetMetadata("path"), "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + "://" + net.JoinHostPort(s.IP, strconv.Itoa(s.Port)) + path
}

// Version returns the advertised service version, if any
func (s *Service) Version() string {
	return s.GetMetadata("version")
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
