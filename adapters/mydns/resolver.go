package mydns

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
	"myresolver/service"
)

// queryTimeout bounds every DNS exchange issued by the resolver.
const queryTimeout = 5 * time.Second

type dnsResolver struct {
	client *dns.Client
	server string
	zone   string
	scope  string
}

// NewResolver creates an interfaces.Resolver backed by a DNS zone. Advertisements are
// SRV records at "_<scope>._tcp.<zone>" (target and port taken from the identity,
// record TTL carrying the lease), maintained through RFC 2136 dynamic updates against
// the zone's primary server. The scope-wide minimum refresh interval is the zone's
// SOA MINTTL. Identities must be in host:port form.
//
// Parameters: server — primary DNS server as host:port (e.g. 10.0.0.53:53); zone —
// zone accepting updates (e.g. example.org); scope — service scope used to build the
// SRV name.
//
// Called from cmd/main when the configured backend is "dns".
func NewResolver(server, zone, scope string) interfaces.Resolver {
	return &dnsResolver{
		client: &dns.Client{Timeout: queryTimeout},
		server: helpers.StrPanic(server, "mydns.resolver.go: server is required"),
		zone:   helpers.StrPanic(zone, "mydns.resolver.go: zone is required"),
		scope:  helpers.StrPanic(scope, "mydns.resolver.go: scope is required"),
	}
}

// Open probes the zone with one SOA query so an unreachable or misconfigured server
// fails during bridge initialization.
func (d *dnsResolver) Open() error {
	_, err := d.queryMinttl()
	return err
}

// FindServices queries the scope's SRV name. NXDOMAIN means nothing is advertised.
// The remaining record TTL is reported as the advertised lease.
func (d *dnsResolver) FindServices() ([]domain.ServiceEntry, error) {
	m := new(dns.Msg)
	m.SetQuestion(d.serviceName(), dns.TypeSRV)
	resp, _, err := d.client.Exchange(m, d.server)
	if err != nil {
		return nil, service.NewInternalServerError("DNS query error", fmt.Errorf("can't query %s, err: %w", d.serviceName(), err))
	}
	if resp.Rcode == dns.RcodeNameError {
		return []domain.ServiceEntry{}, nil
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, service.NewInternalServerError("DNS query refused", fmt.Errorf("SRV query returned %s", dns.RcodeToString[resp.Rcode]))
	}

	entries := make([]domain.ServiceEntry, 0, len(resp.Answer))
	for _, rr := range resp.Answer {
		srv, ok := rr.(*dns.SRV)
		if !ok {
			continue
		}
		host := strings.TrimSuffix(srv.Target, ".")
		entries = append(entries, domain.ServiceEntry{
			Identity:     net.JoinHostPort(host, strconv.Itoa(int(srv.Port))),
			LeaseSeconds: int(srv.Hdr.Ttl),
		})
	}
	return entries, nil
}

func (d *dnsResolver) Register(identity string, leaseSeconds int) error {
	rr, err := d.srvRecord(identity, uint32(leaseSeconds))
	if err != nil {
		return err
	}
	m := new(dns.Msg)
	m.SetUpdate(dns.Fqdn(d.zone))
	m.Insert([]dns.RR{rr})
	return d.exchangeUpdate(m, "register")
}

// Deregister removes the identity's SRV record with a delete-specific update (class
// NONE), so other advertisements under the same name are untouched. Removing a record
// that is already gone succeeds, which keeps the operation idempotent for the engine.
func (d *dnsResolver) Deregister(identity string) error {
	rr, err := d.srvRecord(identity, 0)
	if err != nil {
		return err
	}
	m := new(dns.Msg)
	m.SetUpdate(dns.Fqdn(d.zone))
	m.Remove([]dns.RR{rr})
	return d.exchangeUpdate(m, "deregister")
}

// MinRefreshInterval reports the zone's SOA MINTTL as the scope-wide minimum.
func (d *dnsResolver) MinRefreshInterval() (int, error) {
	return d.queryMinttl()
}

// Close has nothing to tear down: the dns client keeps no connection state between
// exchanges.
func (d *dnsResolver) Close() error {
	return nil
}

func (d *dnsResolver) serviceName() string {
	return dns.Fqdn("_" + d.scope + "._tcp." + d.zone)
}

func (d *dnsResolver) srvRecord(identity string, ttl uint32) (*dns.SRV, error) {
	host, portStr, err := net.SplitHostPort(identity)
	if err != nil {
		return nil, service.NewBadParameterError("Identity must be host:port", fmt.Errorf("can't split identity '%s', err: %w", identity, err))
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, service.NewBadParameterError("Identity port is not a valid port number", fmt.Errorf("can't parse port of identity '%s', err: %w", identity, err))
	}
	return &dns.SRV{
		Hdr: dns.RR_Header{
			Name:   d.serviceName(),
			Rrtype: dns.TypeSRV,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Priority: 0,
		Weight:   0,
		Port:     uint16(port),
		Target:   dns.Fqdn(host),
	}, nil
}

func (d *dnsResolver) exchangeUpdate(m *dns.Msg, op string) error {
	resp, _, err := d.client.Exchange(m, d.server)
	if err != nil {
		return service.NewInternalServerError("DNS update error", fmt.Errorf("can't send %s update to %s, err: %w", op, d.server, err))
	}
	if resp.Rcode != dns.RcodeSuccess {
		return service.NewInternalServerError("DNS update refused", fmt.Errorf("%s update returned %s", op, dns.RcodeToString[resp.Rcode]))
	}
	return nil
}

func (d *dnsResolver) queryMinttl() (int, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(d.zone), dns.TypeSOA)
	resp, _, err := d.client.Exchange(m, d.server)
	if err != nil {
		return 0, service.NewInternalServerError("DNS SOA query error", fmt.Errorf("can't query SOA of %s, err: %w", d.zone, err))
	}
	if resp.Rcode != dns.RcodeSuccess {
		return 0, service.NewInternalServerError("DNS SOA query refused", fmt.Errorf("SOA query returned %s", dns.RcodeToString[resp.Rcode]))
	}
	for _, rr := range resp.Answer {
		if soa, ok := rr.(*dns.SOA); ok {
			return int(soa.Minttl), nil
		}
	}
	return 0, service.NewInternalServerError("DNS SOA missing", fmt.Errorf("zone %s answered without a SOA record", d.zone))
}
