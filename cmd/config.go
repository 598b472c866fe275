package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"myresolver/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envConfigPath = "CONFIG_PATH"
)

// Backend names accepted in the YAML `backend` field.
const (
	backendRedis = "redis"
	backendHTTP  = "http"
	backendDNS   = "dns"
	backendNacos = "nacos"
)

// Config holds the full agent configuration loaded by LoadConfig from environment
// variables and the YAML file. HTTPPort is the agent's listening port (from
// SERVICE_PORT_HTTP); everything else comes from the YAML at CONFIG_PATH: the
// resolver backend selection with its section, the discovery scope, the refresh
// and renewal-margin intervals, the identities announced at startup and whether
// discovery results are health-probed.
type Config struct {
	HTTPPort             int
	Backend              string
	Scope                string
	BaseRefreshSeconds   int
	RenewalMarginSeconds int
	ProbeHealth          bool
	Announce             []domain.Announcement
	Redis                RedisConfig
	HTTP                 HTTPConfig
	DNS                  DNSConfig
	Nacos                NacosConfig
}

// RedisConfig is the redis backend section.
type RedisConfig struct {
	Addr string
}

// HTTPConfig is the http directory backend section.
type HTTPConfig struct {
	BaseURL string
}

// DNSConfig is the dns backend section.
type DNSConfig struct {
	Server string
	Zone   string
}

// NacosConfig is the nacos backend section.
type NacosConfig struct {
	Addr      string
	Namespace string
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	Backend        string         `yaml:"backend"`
	Scope          string         `yaml:"scope"`
	BaseRefreshS   int            `yaml:"base_refresh_s"`
	RenewalMarginS *int           `yaml:"renewal_margin_s"`
	ProbeHealth    bool           `yaml:"probe_health"`
	Announce       []yamlAnnounce `yaml:"announce"`
	Redis          yamlRedis      `yaml:"redis"`
	HTTP           yamlHTTP       `yaml:"http"`
	DNS            yamlDNS        `yaml:"dns"`
	Nacos          yamlNacos      `yaml:"nacos"`
}

// yamlAnnounce is one startup announcement: identity and requested lease.
type yamlAnnounce struct {
	Identity string `yaml:"identity"`
	LeaseS   int    `yaml:"lease_s"`
}

type yamlRedis struct {
	Addr string `yaml:"addr"`
}

type yamlHTTP struct {
	BaseURL string `yaml:"base_url"`
}

type yamlDNS struct {
	Server string `yaml:"server"`
	Zone   string `yaml:"zone"`
}

type yamlNacos struct {
	Addr      string `yaml:"addr"`
	Namespace string `yaml:"namespace"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the agent config from environment variables and YAML at
// CONFIG_PATH. Reads SERVICE_PORT_HTTP (required, 1-65535) and CONFIG_PATH
// (required, converted to absolute). From the YAML: backend (redis|http|dns|nacos)
// with its section validated for the selected backend only, scope (required),
// base_refresh_s (required, positive), renewal_margin_s (optional, defaults to
// domain.DefaultRenewalMarginSeconds, must be positive when set), probe_health and
// the announce list (each entry needs identity and a positive lease_s).
//
// Parameters: none (source — os.Getenv and file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) naming the offending field otherwise.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	config := &Config{
		HTTPPort:    httpPort,
		Backend:     strings.TrimSpace(raw.Backend),
		Scope:       strings.TrimSpace(raw.Scope),
		ProbeHealth: raw.ProbeHealth,
		Redis:       RedisConfig{Addr: strings.TrimSpace(raw.Redis.Addr)},
		HTTP:        HTTPConfig{BaseURL: strings.TrimSpace(raw.HTTP.BaseURL)},
		DNS: DNSConfig{
			Server: strings.TrimSpace(raw.DNS.Server),
			Zone:   strings.TrimSpace(raw.DNS.Zone),
		},
		Nacos: NacosConfig{
			Addr:      strings.TrimSpace(raw.Nacos.Addr),
			Namespace: strings.TrimSpace(raw.Nacos.Namespace),
		},
	}

	switch config.Backend {
	case backendRedis:
		if config.Redis.Addr == "" {
			return nil, fmt.Errorf("redis.addr is required for the redis backend")
		}
	case backendHTTP:
		if config.HTTP.BaseURL == "" {
			return nil, fmt.Errorf("http.base_url is required for the http backend")
		}
	case backendDNS:
		if config.DNS.Server == "" {
			return nil, fmt.Errorf("dns.server is required for the dns backend")
		}
		if config.DNS.Zone == "" {
			return nil, fmt.Errorf("dns.zone is required for the dns backend")
		}
	case backendNacos:
		if config.Nacos.Addr == "" {
			return nil, fmt.Errorf("nacos.addr is required for the nacos backend")
		}
	case "":
		return nil, fmt.Errorf("backend is required")
	default:
		return nil, fmt.Errorf("backend must be redis|http|dns|nacos, got %q", config.Backend)
	}

	if config.Scope == "" {
		return nil, fmt.Errorf("scope is required")
	}

	config.BaseRefreshSeconds = raw.BaseRefreshS
	if config.BaseRefreshSeconds <= 0 {
		return nil, fmt.Errorf("base_refresh_s must be positive, got %d", config.BaseRefreshSeconds)
	}

	config.RenewalMarginSeconds = domain.DefaultRenewalMarginSeconds
	if raw.RenewalMarginS != nil {
		if *raw.RenewalMarginS <= 0 {
			return nil, fmt.Errorf("renewal_margin_s must be positive, got %d", *raw.RenewalMarginS)
		}
		config.RenewalMarginSeconds = *raw.RenewalMarginS
	}

	config.Announce = make([]domain.Announcement, 0, len(raw.Announce))
	for i, entry := range raw.Announce {
		identity := strings.TrimSpace(entry.Identity)
		if identity == "" {
			return nil, fmt.Errorf("announce[%d]: identity is required", i)
		}
		if entry.LeaseS <= 0 {
			return nil, fmt.Errorf("announce[%d]: lease_s must be positive, got %d", i, entry.LeaseS)
		}
		config.Announce = append(config.Announce, domain.Announcement{
			Identity:     identity,
			LeaseSeconds: entry.LeaseS,
		})
	}

	return config, nil
}
