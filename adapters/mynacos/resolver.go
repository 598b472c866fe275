package mynacos

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/clients/naming_client"
	"github.com/nacos-group/nacos-sdk-go/v2/model"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
	"myresolver/service"
)

// leaseMetadataKey carries the granted lease on each registered instance; nacos has
// no lease concept of its own, so the value rides along as instance metadata.
const leaseMetadataKey = "lease_s"

// namingClient is the slice of naming_client.INamingClient the resolver uses.
type namingClient interface {
	RegisterInstance(param vo.RegisterInstanceParam) (bool, error)
	DeregisterInstance(param vo.DeregisterInstanceParam) (bool, error)
	SelectInstances(param vo.SelectInstancesParam) ([]model.Instance, error)
	CloseClient()
}

var _ namingClient = naming_client.INamingClient(nil)

type nacosResolver struct {
	client namingClient
	scope  string
}

// NewResolver creates an interfaces.Resolver backed by a nacos naming service. The
// scope is the nacos service name; each identity registers as one ephemeral instance
// under it with the lease in metadata. Identities must be in host:port form.
//
// Called from cmd/main when the configured backend is "nacos".
func NewResolver(client naming_client.INamingClient, scope string) interfaces.Resolver {
	return &nacosResolver{
		client: helpers.NilPanic[namingClient](client, "mynacos.resolver.go: client is required"),
		scope:  helpers.StrPanic(scope, "mynacos.resolver.go: scope is required"),
	}
}

// Open probes the naming service with one instance query so an unreachable server
// fails during bridge initialization.
func (r *nacosResolver) Open() error {
	_, err := r.selectHealthy()
	return err
}

// FindServices lists the healthy, enabled instances of the scope's service. The
// advertised lease is read back from instance metadata; instances registered by
// other tooling without it are reported with lease 0.
func (r *nacosResolver) FindServices() ([]domain.ServiceEntry, error) {
	instances, err := r.selectHealthy()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ServiceEntry, 0, len(instances))
	for _, instance := range instances {
		if !instance.Enable || !instance.Healthy {
			continue
		}
		lease, _ := strconv.Atoi(instance.Metadata[leaseMetadataKey])
		entries = append(entries, domain.ServiceEntry{
			Identity:     fmt.Sprintf("%s:%d", instance.Ip, instance.Port),
			LeaseSeconds: lease,
		})
	}
	return entries, nil
}

func (r *nacosResolver) Register(identity string, leaseSeconds int) error {
	ip, port, err := splitIdentity(identity)
	if err != nil {
		return err
	}
	success, err := r.client.RegisterInstance(vo.RegisterInstanceParam{
		Ip:          ip,
		Port:        port,
		ServiceName: r.scope,
		Weight:      10,
		Enable:      true,
		Healthy:     true,
		Ephemeral:   true,
		Metadata:    map[string]string{leaseMetadataKey: strconv.Itoa(leaseSeconds)},
	})
	if err != nil {
		return service.NewInternalServerError("Nacos register error", fmt.Errorf("can't register instance '%s', err: %w", identity, err))
	}
	if !success {
		return service.NewInternalServerError("Nacos register refused", fmt.Errorf("register of instance '%s' returned false", identity))
	}
	return nil
}

func (r *nacosResolver) Deregister(identity string) error {
	ip, port, err := splitIdentity(identity)
	if err != nil {
		return err
	}
	success, err := r.client.DeregisterInstance(vo.DeregisterInstanceParam{
		Ip:          ip,
		Port:        port,
		ServiceName: r.scope,
		Ephemeral:   true,
	})
	if err != nil {
		return service.NewInternalServerError("Nacos deregister error", fmt.Errorf("can't deregister instance '%s', err: %w", identity, err))
	}
	if !success {
		return service.NewInternalServerError("Nacos deregister refused", fmt.Errorf("deregister of instance '%s' returned false", identity))
	}
	return nil
}

// MinRefreshInterval always reports no minimum: nacos exposes no scope-wide refresh
// policy for clients to honor.
func (r *nacosResolver) MinRefreshInterval() (int, error) {
	return 0, nil
}

func (r *nacosResolver) Close() error {
	r.client.CloseClient()
	return nil
}

// selectHealthy queries the scope's healthy instances. The SDK reports an empty
// instance list as an error; that case is mapped back to an empty, valid result.
func (r *nacosResolver) selectHealthy() ([]model.Instance, error) {
	instances, err := r.client.SelectInstances(vo.SelectInstancesParam{
		ServiceName: r.scope,
		HealthyOnly: true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "instance list is empty") {
			return []model.Instance{}, nil
		}
		return nil, service.NewInternalServerError("Nacos query error", fmt.Errorf("can't list instances of '%s', err: %w", r.scope, err))
	}
	return instances, nil
}

func splitIdentity(identity string) (string, uint64, error) {
	host, portStr, err := net.SplitHostPort(identity)
	if err != nil {
		return "", 0, service.NewBadParameterError("Identity must be host:port", fmt.Errorf("can't split identity '%s', err: %w", identity, err))
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, service.NewBadParameterError("Identity port is not a valid port number", fmt.Errorf("can't parse port of identity '%s', err: %w", identity, err))
	}
	return host, port, nil
}
