package mydns

import (
	"net"
	"sync"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myresolver/service"
)

const testZone = "example.org"
const testScope = "e133"

// fakeZone is an in-process DNS server implementing just enough of SRV/SOA queries
// and RFC 2136 updates for the resolver tests.
type fakeZone struct {
	mu            sync.Mutex
	srvs          []*dns.SRV
	minttl        uint32
	refuseUpdates bool
	omitSOA       bool
}

func (z *fakeZone) handle(w dns.ResponseWriter, req *dns.Msg) {
	z.mu.Lock()
	defer z.mu.Unlock()

	resp := new(dns.Msg)
	resp.SetReply(req)

	switch req.Opcode {
	case dns.OpcodeUpdate:
		if z.refuseUpdates {
			resp.Rcode = dns.RcodeRefused
			break
		}
		// Update RRs arrive in the authority section.
		for _, rr := range req.Ns {
			srv, ok := rr.(*dns.SRV)
			if !ok {
				continue
			}
			if srv.Hdr.Class == dns.ClassNONE {
				z.remove(srv)
			} else {
				z.insert(srv)
			}
		}
	case dns.OpcodeQuery:
		if len(req.Question) == 0 {
			break
		}
		q := req.Question[0]
		switch q.Qtype {
		case dns.TypeSRV:
			for _, srv := range z.srvs {
				if srv.Hdr.Name == q.Name {
					resp.Answer = append(resp.Answer, srv)
				}
			}
		case dns.TypeSOA:
			if z.omitSOA {
				break
			}
			resp.Answer = append(resp.Answer, &dns.SOA{
				Hdr:     dns.RR_Header{Name: q.Name, Rrtype: dns.TypeSOA, Class: dns.ClassINET, Ttl: 300},
				Ns:      "ns1." + testZone + ".",
				Mbox:    "admin." + testZone + ".",
				Serial:  1,
				Refresh: 3600,
				Retry:   600,
				Expire:  86400,
				Minttl:  z.minttl,
			})
		}
	}
	_ = w.WriteMsg(resp)
}

func (z *fakeZone) insert(srv *dns.SRV) {
	z.remove(srv)
	clone := *srv
	clone.Hdr.Class = dns.ClassINET
	z.srvs = append(z.srvs, &clone)
}

func (z *fakeZone) remove(srv *dns.SRV) {
	kept := z.srvs[:0]
	for _, s := range z.srvs {
		if s.Target == srv.Target && s.Port == srv.Port {
			continue
		}
		kept = append(kept, s)
	}
	z.srvs = kept
}

func startFakeZone(t *testing.T) (*fakeZone, string) {
	t.Helper()
	zone := &fakeZone{minttl: 15}
	mux := dns.NewServeMux()
	mux.HandleFunc(".", zone.handle)
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	server := &dns.Server{PacketConn: pc, Handler: mux}
	go func() { _ = server.ActivateAndServe() }()
	t.Cleanup(func() { _ = server.Shutdown() })
	return zone, pc.LocalAddr().String()
}

func TestNewResolver_Panics(t *testing.T) {
	t.Run("server_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "mydns.resolver.go: server is required", func() {
			NewResolver("", testZone, testScope)
		})
	})
	t.Run("zone_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "mydns.resolver.go: zone is required", func() {
			NewResolver("127.0.0.1:53", "", testScope)
		})
	})
	t.Run("scope_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "mydns.resolver.go: scope is required", func() {
			NewResolver("127.0.0.1:53", testZone, "")
		})
	})
}

func TestResolver_RegisterAndFindServices(t *testing.T) {
	zone, addr := startFakeZone(t)
	res := NewResolver(addr, testZone, testScope)

	t.Run("registered_service_is_advertised_with_its_lease", func(t *testing.T) {
		err := res.Register("node-a.example.org:9000", 30)
		require.NoError(t, err)

		entries, err := res.FindServices()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "node-a.example.org:9000", entries[0].Identity)
		assert.Equal(t, 30, entries[0].LeaseSeconds)
	})

	t.Run("reregistration_replaces_the_lease", func(t *testing.T) {
		err := res.Register("node-a.example.org:9000", 45)
		require.NoError(t, err)

		entries, err := res.FindServices()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 45, entries[0].LeaseSeconds)
	})

	t.Run("multiple_registrations_are_all_advertised", func(t *testing.T) {
		err := res.Register("node-b.example.org:9001", 60)
		require.NoError(t, err)

		entries, err := res.FindServices()
		require.NoError(t, err)
		identities := make([]string, 0, len(entries))
		for _, e := range entries {
			identities = append(identities, e.Identity)
		}
		assert.ElementsMatch(t, []string{"node-a.example.org:9000", "node-b.example.org:9001"}, identities)
	})

	t.Run("refused_update_returns_internal_server_error", func(t *testing.T) {
		zone.mu.Lock()
		zone.refuseUpdates = true
		zone.mu.Unlock()
		defer func() {
			zone.mu.Lock()
			zone.refuseUpdates = false
			zone.mu.Unlock()
		}()

		err := res.Register("node-c.example.org:9002", 30)
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})

	t.Run("malformed_identity_returns_bad_parameter", func(t *testing.T) {
		err := res.Register("no-port-here", 30)
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
	})
}

func TestResolver_FindServices_Empty(t *testing.T) {
	_, addr := startFakeZone(t)
	res := NewResolver(addr, testZone, testScope)

	entries, err := res.FindServices()
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestResolver_Deregister(t *testing.T) {
	_, addr := startFakeZone(t)
	res := NewResolver(addr, testZone, testScope)
	require.NoError(t, res.Register("node-a.example.org:9000", 30))
	require.NoError(t, res.Register("node-b.example.org:9001", 30))

	err := res.Deregister("node-a.example.org:9000")
	require.NoError(t, err)

	entries, err := res.FindServices()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "node-b.example.org:9001", entries[0].Identity)

	t.Run("deregistering_twice_is_not_an_error", func(t *testing.T) {
		assert.NoError(t, res.Deregister("node-a.example.org:9000"))
	})

	t.Run("malformed_identity_returns_bad_parameter", func(t *testing.T) {
		err := res.Deregister("no-port-here")
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
	})
}

func TestResolver_MinRefreshInterval(t *testing.T) {
	zone, addr := startFakeZone(t)
	res := NewResolver(addr, testZone, testScope)

	t.Run("soa_minttl_is_the_minimum", func(t *testing.T) {
		seconds, err := res.MinRefreshInterval()
		require.NoError(t, err)
		assert.Equal(t, 15, seconds)
	})

	t.Run("missing_soa_returns_error", func(t *testing.T) {
		zone.mu.Lock()
		zone.omitSOA = true
		zone.mu.Unlock()
		defer func() {
			zone.mu.Lock()
			zone.omitSOA = false
			zone.mu.Unlock()
		}()

		_, err := res.MinRefreshInterval()
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})
}

func TestResolver_OpenAndClose(t *testing.T) {
	_, addr := startFakeZone(t)
	res := NewResolver(addr, testZone, testScope)

	require.NoError(t, res.Open())
	require.NoError(t, res.Close())
}
