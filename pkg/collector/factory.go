package collector

import (
	"context"

	"github.com/nodescope/nodescope/pkg/collector/cluster"
	"github.com/nodescope/nodescope/pkg/collector/hardware"
	"github.com/nodescope/nodescope/pkg/collector/health"
	"github.com/nodescope/nodescope/pkg/collector/network"
	"github.com/nodescope/nodescope/pkg/collector/nix"
	osprobe "github.com/nodescope/nodescope/pkg/collector/os"
	"github.com/nodescope/nodescope/pkg/collector/procs"
	"github.com/nodescope/nodescope/pkg/collector/security"
	"github.com/nodescope/nodescope/pkg/report"
)

// Per-section probe interfaces. Each probe fills exactly one report section.

type HardwareProbe interface {
	Collect(ctx context.Context) (report.Hardware, error)
}

type OSProbe interface {
	Collect(ctx context.Context) (report.OS, error)
}

type NetworkProbe interface {
	Collect(ctx context.Context) (report.Network, error)
}

type NixProbe interface {
	Collect(ctx context.Context) (report.NixStore, error)
}

// ClusterProbe returns nil when no cluster is reachable. That is not an
// error; standalone nodes are the common case.
type ClusterProbe interface {
	Collect(ctx context.Context) (*report.Cluster, error)
}

type HealthProbe interface {
	Collect(ctx context.Context) (report.Health, error)
}

type ProcessProbe interface {
	Collect(ctx context.Context) (report.Processes, error)
}

type SecurityProbe interface {
	Collect(ctx context.Context) (report.Security, error)
}

// Factory creates probes with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHardwareProbe() HardwareProbe
	CreateOSProbe() OSProbe
	CreateNetworkProbe() NetworkProbe
	CreateNixProbe() NixProbe
	CreateClusterProbe() ClusterProbe
	CreateHealthProbe() HealthProbe
	CreateProcessProbe() ProcessProbe
	CreateSecurityProbe() SecurityProbe
}

// DefaultFactory creates probes with production dependencies.
type DefaultFactory struct {
	// CertFiles are PEM certificate paths checked by the security probe.
	CertFiles []string

	// AuthorizedKeysFiles are the authorized_keys files scanned for
	// deployed SSH keys.
	AuthorizedKeysFiles []string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		AuthorizedKeysFiles: security.DefaultAuthorizedKeysFiles(),
	}
}

// CreateHardwareProbe creates a hardware probe.
func (f *DefaultFactory) CreateHardwareProbe() HardwareProbe {
	return &hardware.Probe{}
}

// CreateOSProbe creates an operating system probe.
func (f *DefaultFactory) CreateOSProbe() OSProbe {
	return &osprobe.Probe{}
}

// CreateNetworkProbe creates a network probe.
func (f *DefaultFactory) CreateNetworkProbe() NetworkProbe {
	return &network.Probe{}
}

// CreateNixProbe creates a Nix store probe.
func (f *DefaultFactory) CreateNixProbe() NixProbe {
	return &nix.Probe{}
}

// CreateClusterProbe creates a Kubernetes API probe.
func (f *DefaultFactory) CreateClusterProbe() ClusterProbe {
	return &cluster.Probe{}
}

// CreateHealthProbe creates a utilization probe.
func (f *DefaultFactory) CreateHealthProbe() HealthProbe {
	return &health.Probe{}
}

// CreateProcessProbe creates a process table probe.
func (f *DefaultFactory) CreateProcessProbe() ProcessProbe {
	return &procs.Probe{}
}

// CreateSecurityProbe creates a security posture probe.
func (f *DefaultFactory) CreateSecurityProbe() SecurityProbe {
	return &security.Probe{
		CertFiles:           f.CertFiles,
		AuthorizedKeysFiles: f.AuthorizedKeysFiles,
	}
}
