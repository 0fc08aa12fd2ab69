package collector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nodescope/nodescope/pkg/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFactory returns canned sections, with selected probes failing.
type stubFactory struct {
	failHardware bool
	failNetwork  bool
	failCluster  bool
}

type stubProbe[T any] struct {
	section T
	err     error
}

func (s stubProbe[T]) Collect(context.Context) (T, error) { return s.section, s.err }

func (f *stubFactory) CreateHardwareProbe() HardwareProbe {
	probe := stubProbe[report.Hardware]{section: report.Hardware{CPUModel: "stub-cpu", CPUCores: 4}}
	if f.failHardware {
		probe.err = fmt.Errorf("cpuinfo unreadable")
	}
	return probe
}

func (f *stubFactory) CreateOSProbe() OSProbe {
	return stubProbe[report.OS]{section: report.OS{Distribution: "NixOS", Version: "24.05"}}
}

func (f *stubFactory) CreateNetworkProbe() NetworkProbe {
	probe := stubProbe[report.Network]{section: report.Network{DefaultGateway: "10.0.0.1"}}
	if f.failNetwork {
		probe.err = fmt.Errorf("netlink down")
	}
	return probe
}

func (f *stubFactory) CreateNixProbe() NixProbe {
	return stubProbe[report.NixStore]{section: report.NixStore{Version: "2.18.1"}}
}

func (f *stubFactory) CreateClusterProbe() ClusterProbe {
	probe := stubProbe[*report.Cluster]{section: &report.Cluster{NodeReady: true}}
	if f.failCluster {
		probe.section = nil
		probe.err = fmt.Errorf("apiserver unreachable")
	}
	return probe
}

func (f *stubFactory) CreateHealthProbe() HealthProbe {
	return stubProbe[report.Health]{section: report.Health{LoadAverage1m: 0.5}}
}

func (f *stubFactory) CreateProcessProbe() ProcessProbe {
	return stubProbe[report.Processes]{section: report.Processes{Total: 120}}
}

func (f *stubFactory) CreateSecurityProbe() SecurityProbe {
	return stubProbe[report.Security]{section: report.Security{SSHDRunning: true}}
}

func TestCollectAssemblesAllSections(t *testing.T) {
	c := &Collector{Version: "1.2.3", Factory: &stubFactory{}}

	before := time.Now().UTC()
	rep := c.Collect(context.Background())
	require.NotNil(t, rep)

	assert.Equal(t, "1.2.3", rep.DaemonVersion)
	assert.NotEmpty(t, rep.Hostname)
	assert.False(t, rep.Timestamp.Before(before), "timestamp is set after probes finish")

	assert.Equal(t, "stub-cpu", rep.Hardware.CPUModel)
	assert.Equal(t, "NixOS", rep.OS.Distribution)
	assert.Equal(t, "10.0.0.1", rep.Network.DefaultGateway)
	assert.Equal(t, "2.18.1", rep.Nix.Version)
	require.NotNil(t, rep.Cluster)
	assert.True(t, rep.Cluster.NodeReady)
	assert.Equal(t, 0.5, rep.Health.LoadAverage1m)
	assert.Equal(t, 120, rep.Procs.Total)
	assert.True(t, rep.Security.SSHDRunning)
}

func TestCollectToleratesProbeFailures(t *testing.T) {
	c := &Collector{
		Version: "1.2.3",
		Factory: &stubFactory{failHardware: true, failNetwork: true, failCluster: true},
	}

	rep := c.Collect(context.Background())
	require.NotNil(t, rep)

	// failed sections degrade to their zero values
	assert.Equal(t, report.Hardware{}, rep.Hardware)
	assert.Equal(t, report.Network{}, rep.Network)
	assert.Nil(t, rep.Cluster)

	// healthy sections are untouched
	assert.Equal(t, "NixOS", rep.OS.Distribution)
	assert.Equal(t, 120, rep.Procs.Total)
}

func TestNewUsesDefaultFactory(t *testing.T) {
	c := New("dev")
	assert.Equal(t, "dev", c.Version)
	assert.IsType(t, &DefaultFactory{}, c.Factory)
}
