// Copyright (c) 2025, the nodescope authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import "time"

// Report is a point-in-time inventory snapshot of a single node.
// It is assembled once per collection cycle and never mutated afterwards.
// Every section has a usable zero value so a failed probe degrades to an
// empty section instead of aborting the whole report.
type Report struct {
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
	DaemonVersion string    `json:"daemonVersion" yaml:"daemonVersion"`
	Hostname      string    `json:"hostname" yaml:"hostname"`

	Hardware Hardware  `json:"hardware" yaml:"hardware"`
	OS       OS        `json:"os" yaml:"os"`
	Network  Network   `json:"network" yaml:"network"`
	Nix      NixStore  `json:"nix" yaml:"nix"`
	Cluster  *Cluster  `json:"cluster,omitempty" yaml:"cluster,omitempty"`
	Health   Health    `json:"health" yaml:"health"`
	Procs    Processes `json:"processes" yaml:"processes"`
	Security Security  `json:"security" yaml:"security"`
}

// Hardware describes CPU, memory, storage, and power state.
type Hardware struct {
	CPUModel        string               `json:"cpuModel" yaml:"cpuModel"`
	CPUVendor       string               `json:"cpuVendor" yaml:"cpuVendor"`
	CPUArchitecture string               `json:"cpuArchitecture" yaml:"cpuArchitecture"`
	CPUCores        int                  `json:"cpuCores" yaml:"cpuCores"`
	CPUThreads      int                  `json:"cpuThreads" yaml:"cpuThreads"`
	CPUFrequencyMHz uint64               `json:"cpuFrequencyMhz,omitempty" yaml:"cpuFrequencyMhz,omitempty"`
	RAMTotalBytes   uint64               `json:"ramTotalBytes" yaml:"ramTotalBytes"`
	RAMAvailBytes   uint64               `json:"ramAvailableBytes" yaml:"ramAvailableBytes"`
	SwapTotalBytes  uint64               `json:"swapTotalBytes" yaml:"swapTotalBytes"`
	SwapUsedBytes   uint64               `json:"swapUsedBytes" yaml:"swapUsedBytes"`
	Disks           []Disk               `json:"disks" yaml:"disks"`
	GPUs            []GPU                `json:"gpus" yaml:"gpus"`
	Temperatures    []TemperatureReading `json:"temperatures,omitempty" yaml:"temperatures,omitempty"`
	Power           *Power               `json:"power,omitempty" yaml:"power,omitempty"`
}

// Disk is one mounted filesystem.
type Disk struct {
	Device         string `json:"device" yaml:"device"`
	MountPoint     string `json:"mountPoint" yaml:"mountPoint"`
	Filesystem     string `json:"filesystem" yaml:"filesystem"`
	TotalBytes     uint64 `json:"totalBytes" yaml:"totalBytes"`
	UsedBytes      uint64 `json:"usedBytes" yaml:"usedBytes"`
	AvailableBytes uint64 `json:"availableBytes" yaml:"availableBytes"`
}

// GPU is one detected graphics device.
type GPU struct {
	Name      string `json:"name" yaml:"name"`
	Vendor    string `json:"vendor" yaml:"vendor"`
	VRAMBytes uint64 `json:"vramBytes,omitempty" yaml:"vramBytes,omitempty"`
}

// TemperatureReading is one thermal sensor sample.
type TemperatureReading struct {
	Label   string  `json:"label" yaml:"label"`
	Celsius float64 `json:"celsius" yaml:"celsius"`
}

// Power describes battery state on portable machines.
type Power struct {
	OnBattery     bool    `json:"onBattery" yaml:"onBattery"`
	ChargePercent float64 `json:"chargePercent,omitempty" yaml:"chargePercent,omitempty"`
	Charging      bool    `json:"charging" yaml:"charging"`
}

// OS describes the operating system and kernel.
type OS struct {
	Distribution   string     `json:"distribution" yaml:"distribution"`
	Version        string     `json:"version" yaml:"version"`
	KernelVersion  string     `json:"kernelVersion" yaml:"kernelVersion"`
	Architecture   string     `json:"architecture" yaml:"architecture"`
	Hostname       string     `json:"hostname" yaml:"hostname"`
	BuildID        string     `json:"buildId,omitempty" yaml:"buildId,omitempty"`
	SystemdVersion string     `json:"systemdVersion,omitempty" yaml:"systemdVersion,omitempty"`
	BootTime       *time.Time `json:"bootTime,omitempty" yaml:"bootTime,omitempty"`
	UptimeSeconds  uint64     `json:"uptimeSeconds" yaml:"uptimeSeconds"`
	Timezone       string     `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Virtualization string     `json:"virtualization,omitempty" yaml:"virtualization,omitempty"`
	IsWSL          bool       `json:"isWsl" yaml:"isWsl"`
}

// Network describes interfaces, routing, DNS, and listening sockets.
type Network struct {
	Hostname       string          `json:"hostname" yaml:"hostname"`
	Interfaces     []Interface     `json:"interfaces" yaml:"interfaces"`
	Routes         []Route         `json:"routes" yaml:"routes"`
	DNSResolvers   []string        `json:"dnsResolvers" yaml:"dnsResolvers"`
	DefaultGateway string          `json:"defaultGateway,omitempty" yaml:"defaultGateway,omitempty"`
	ListeningPorts []ListeningPort `json:"listeningPorts" yaml:"listeningPorts"`
}

// Interface is one network interface with its addresses and counters.
type Interface struct {
	Name      string   `json:"name" yaml:"name"`
	State     string   `json:"state" yaml:"state"`
	Addresses []string `json:"addresses" yaml:"addresses"`
	MAC       string   `json:"mac,omitempty" yaml:"mac,omitempty"`
	MTU       int      `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	RxBytes   uint64   `json:"rxBytes" yaml:"rxBytes"`
	TxBytes   uint64   `json:"txBytes" yaml:"txBytes"`
}

// Route is one kernel routing table entry.
type Route struct {
	Destination string `json:"destination" yaml:"destination"`
	Gateway     string `json:"gateway,omitempty" yaml:"gateway,omitempty"`
	Interface   string `json:"interface" yaml:"interface"`
}

// ListeningPort is one listening TCP or UDP socket.
type ListeningPort struct {
	Port     int    `json:"port" yaml:"port"`
	Protocol string `json:"protocol" yaml:"protocol"`
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Process  string `json:"process,omitempty" yaml:"process,omitempty"`
}

// NixStore describes the state of the Nix package store.
type NixStore struct {
	Version           string   `json:"version" yaml:"version"`
	StoreSizeBytes    uint64   `json:"storeSizeBytes" yaml:"storeSizeBytes"`
	StorePathCount    uint64   `json:"storePathCount" yaml:"storePathCount"`
	GCRootsCount      uint64   `json:"gcRootsCount" yaml:"gcRootsCount"`
	CurrentSystemPath string   `json:"currentSystemPath,omitempty" yaml:"currentSystemPath,omitempty"`
	Substituters      []string `json:"substituters" yaml:"substituters"`
	SystemGenerations uint64   `json:"systemGenerations" yaml:"systemGenerations"`
	Channels          []string `json:"channels" yaml:"channels"`
	TrustedUsers      []string `json:"trustedUsers" yaml:"trustedUsers"`
	MaxJobs           string   `json:"maxJobs,omitempty" yaml:"maxJobs,omitempty"`
	SandboxEnabled    bool     `json:"sandboxEnabled" yaml:"sandboxEnabled"`
}

// Cluster describes the local Kubernetes node, when one is present.
// A nil Cluster on the report means no cluster was reachable.
type Cluster struct {
	ServerVersion      string             `json:"serverVersion,omitempty" yaml:"serverVersion,omitempty"`
	NodeReady          bool               `json:"nodeReady" yaml:"nodeReady"`
	PodCount           int                `json:"podCount" yaml:"podCount"`
	NamespaceCount     int                `json:"namespaceCount" yaml:"namespaceCount"`
	Conditions         []ClusterCondition `json:"conditions" yaml:"conditions"`
	CPURequestsMillis  int64              `json:"cpuRequestsMillis" yaml:"cpuRequestsMillis"`
	CPULimitsMillis    int64              `json:"cpuLimitsMillis" yaml:"cpuLimitsMillis"`
	MemRequestsBytes   int64              `json:"memoryRequestsBytes" yaml:"memoryRequestsBytes"`
	MemLimitsBytes     int64              `json:"memoryLimitsBytes" yaml:"memoryLimitsBytes"`
	ImageRegistries    []string           `json:"imageRegistries,omitempty" yaml:"imageRegistries,omitempty"`
}

// ClusterCondition mirrors one node condition from the cluster API.
type ClusterCondition struct {
	Type    string `json:"type" yaml:"type"`
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Health holds point-in-time utilization metrics.
type Health struct {
	LoadAverage1m      float64     `json:"loadAverage1m" yaml:"loadAverage1m"`
	LoadAverage5m      float64     `json:"loadAverage5m" yaml:"loadAverage5m"`
	LoadAverage15m     float64     `json:"loadAverage15m" yaml:"loadAverage15m"`
	CPUUsagePercent    float64     `json:"cpuUsagePercent" yaml:"cpuUsagePercent"`
	MemoryUsagePercent float64     `json:"memoryUsagePercent" yaml:"memoryUsagePercent"`
	SwapUsagePercent   float64     `json:"swapUsagePercent" yaml:"swapUsagePercent"`
	DiskUsage          []DiskUsage `json:"diskUsage" yaml:"diskUsage"`
	OpenFileDescs      uint64      `json:"openFileDescriptors,omitempty" yaml:"openFileDescriptors,omitempty"`
	MaxFileDescs       uint64      `json:"maxFileDescriptors,omitempty" yaml:"maxFileDescriptors,omitempty"`
}

// DiskUsage is percentage utilization for one mount point.
type DiskUsage struct {
	MountPoint   string  `json:"mountPoint" yaml:"mountPoint"`
	UsagePercent float64 `json:"usagePercent" yaml:"usagePercent"`
}

// Processes summarizes the process table.
type Processes struct {
	Total     int           `json:"total" yaml:"total"`
	Running   int           `json:"running" yaml:"running"`
	Zombie    int           `json:"zombie" yaml:"zombie"`
	TopCPU    []ProcessInfo `json:"topCpu" yaml:"topCpu"`
	TopMemory []ProcessInfo `json:"topMemory" yaml:"topMemory"`
}

// ProcessInfo is one entry in a top-consumers list.
type ProcessInfo struct {
	PID           int     `json:"pid" yaml:"pid"`
	Name          string  `json:"name" yaml:"name"`
	CPUPercent    float64 `json:"cpuPercent" yaml:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent" yaml:"memoryPercent"`
}

// Security describes the node's security posture.
type Security struct {
	SSHKeysDeployed     []string     `json:"sshKeysDeployed" yaml:"sshKeysDeployed"`
	TLSCertificates     []CertStatus `json:"tlsCertificates" yaml:"tlsCertificates"`
	FirewallActive      bool         `json:"firewallActive" yaml:"firewallActive"`
	FirewallRulesCount  int          `json:"firewallRulesCount" yaml:"firewallRulesCount"`
	FirewallBackend     string       `json:"firewallBackend,omitempty" yaml:"firewallBackend,omitempty"`
	SSHDRunning         bool         `json:"sshdRunning" yaml:"sshdRunning"`
	RootLoginAllowed    bool         `json:"rootLoginAllowed" yaml:"rootLoginAllowed"`
	PasswordAuthEnabled bool         `json:"passwordAuthEnabled" yaml:"passwordAuthEnabled"`
}

// CertStatus is expiry information for one TLS certificate.
type CertStatus struct {
	Domain          string     `json:"domain" yaml:"domain"`
	Expiry          *time.Time `json:"expiry,omitempty" yaml:"expiry,omitempty"`
	DaysUntilExpiry int64      `json:"daysUntilExpiry,omitempty" yaml:"daysUntilExpiry,omitempty"`
	Issuer          string     `json:"issuer,omitempty" yaml:"issuer,omitempty"`
}
