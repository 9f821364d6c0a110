package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/rihenm13-code/password-checker/internal/logging"
)

const (
	// ServiceType is the mDNS service type advertised by scoring services
	ServiceType = "_pwcheck._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for service discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is the port used when an entry does not carry one
	DefaultPort = 5000
)

// ErrNotFound is returned by First when no service answered in time
var ErrNotFound = errors.New("no pwcheck service found")

// BrowseFunc browses for service entries and sends them on entries until
// ctx is done. It matches (*zeroconf.Resolver).Browse.
type BrowseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// Scanner handles mDNS service discovery
type Scanner struct {
	// Timeout is the maximum time to wait for services
	Timeout time.Duration

	browse BrowseFunc
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
		browse:  zeroconfBrowse,
	}
}

func zeroconfBrowse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fmt.Errorf("failed to create mDNS resolver: %w", err)
	}
	return resolver.Browse(ctx, service, domain, entries)
}

// Scan discovers every scoring service that answers before the timeout.
// Services are returned in discovery order, one per instance name.
func (s *Scanner) Scan(ctx context.Context) ([]*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		services []*Service
		seen     = make(map[string]bool)
	)

	err := s.run(ctx, func(svc *Service) bool {
		mu.Lock()
		defer mu.Unlock()
		if !seen[svc.Instance] {
			seen[svc.Instance] = true
			services = append(services, svc)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	logging.Debug("mDNS scan complete", zap.Int("services", len(services)))
	return services, nil
}

// First returns the first scoring service that answers.
func (s *Scanner) First(ctx context.Context) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	found := make(chan *Service, 1)
	err := s.run(ctx, func(svc *Service) bool {
		select {
		case found <- svc:
		default:
		}
		cancel()
		return false
	})
	if err != nil {
		return nil, err
	}

	select {
	case svc := <-found:
		return svc, nil
	default:
		return nil, fmt.Errorf("%w within %s", ErrNotFound, s.Timeout)
	}
}

// run browses until ctx is done, handing each parsed service to fn.
// fn returns false to stop reading entries.
func (s *Scanner) run(ctx context.Context, fn func(*Service) bool) error {
	entries := make(chan *zeroconf.ServiceEntry, 16)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := parseServiceEntry(entry)
				if svc == nil {
					continue
				}
				logging.Debug("mDNS service found",
					zap.String("instance", svc.Instance),
					zap.String("url", svc.BaseURL()),
				)
				if !fn(svc) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := s.browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Wait for the timeout (or First's early cancel), then for the reader
	<-ctx.Done()
	<-done
	return nil
}

// parseServiceEntry converts a zeroconf service entry to a Service.
// Returns nil if the entry has no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Service {
	if entry == nil {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	// TXT records are in "key=value" format
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	instance := entry.Instance
	if instance == "" {
		instance = strings.TrimSuffix(entry.HostName, ".")
	}

	return &Service{
		Instance:     instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}
