package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults match the layout of the shipped database container image.
const (
	DefaultMembershipPath = "/opt/stratadb/config/admintools.conf"
	DefaultAdminToolPath  = "/opt/stratadb/bin/admintools"
	DefaultCredentialPath = "/etc/podinfo/superuser-passwd"
	DefaultPodIPEnvVar    = "POD_IP"
)

// Config holds the process-wide paths and environment names consumed by a
// single nodeops invocation. Everything here is fixed for the lifetime of the
// run; components receive a Config instead of reaching for package literals so
// tests can point them at temporary directories.
type Config struct {
	// MembershipPath is the node registry file maintained by the cluster
	// tooling. Its absence means the host is not a cluster member.
	MembershipPath string `yaml:"membershipPath"`

	// AdminToolPath is the cluster administration executable.
	AdminToolPath string `yaml:"adminToolPath"`

	// CredentialPath is the mounted superuser secret. Optional; when the
	// file is missing, administration commands run unauthenticated.
	CredentialPath string `yaml:"credentialPath"`

	// PodIPEnvVar names the environment variable carrying the pod's
	// current network address.
	PodIPEnvVar string `yaml:"podIPEnvVar"`
}

// Default returns a Config populated with the container image defaults.
func Default() *Config {
	return &Config{
		MembershipPath: DefaultMembershipPath,
		AdminToolPath:  DefaultAdminToolPath,
		CredentialPath: DefaultCredentialPath,
		PodIPEnvVar:    DefaultPodIPEnvVar,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the plain defaults. Fields missing from the file keep their
// default values; a malformed file is a startup error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
