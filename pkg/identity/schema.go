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

package identity

// Identity is the declared configuration document for a node: the
// user-authored desired state, as opposed to the runtime-observed report.
// It is loaded from a base YAML file plus overlay fragments and only ever
// replaced wholesale.
type Identity struct {
	Version  string `yaml:"version" json:"version"`
	Profile  string `yaml:"profile" json:"profile"`
	Hostname string `yaml:"hostname" json:"hostname"`

	User       User       `yaml:"user,omitempty" json:"user,omitempty"`
	Secrets    Secrets    `yaml:"secrets,omitempty" json:"secrets,omitempty"`
	Hardware   Hardware   `yaml:"hardware,omitempty" json:"hardware,omitempty"`
	Network    Network    `yaml:"network,omitempty" json:"network,omitempty"`
	Nix        Nix        `yaml:"nix,omitempty" json:"nix,omitempty"`
	Kubernetes Kubernetes `yaml:"kubernetes,omitempty" json:"kubernetes,omitempty"`
	Services   Services   `yaml:"services,omitempty" json:"services,omitempty"`
	Git        Git        `yaml:"git,omitempty" json:"git,omitempty"`
	Fleet      Fleet      `yaml:"fleet,omitempty" json:"fleet,omitempty"`
}

// User is the primary login account declaration.
type User struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	UID   int    `yaml:"uid,omitempty" json:"uid,omitempty"`
	Shell string `yaml:"shell,omitempty" json:"shell,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Secrets holds references to secret material, never the material itself.
type Secrets struct {
	Provider          string           `yaml:"provider,omitempty" json:"provider,omitempty"`
	AgeKeyFile        string           `yaml:"ageKeyFile,omitempty" json:"ageKeyFile,omitempty"`
	AgeKeys           []string         `yaml:"ageKeys,omitempty" json:"ageKeys,omitempty"`
	SSHAuthorizedKeys []string         `yaml:"sshAuthorizedKeys,omitempty" json:"sshAuthorizedKeys,omitempty"`
	TLSCertificates   []TLSCertificate `yaml:"tlsCertificates,omitempty" json:"tlsCertificates,omitempty"`
}

// TLSCertificate references one certificate/key pair to deploy.
type TLSCertificate struct {
	Domain   string `yaml:"domain" json:"domain"`
	CertFile string `yaml:"certFile,omitempty" json:"certFile,omitempty"`
	KeyFile  string `yaml:"keyFile,omitempty" json:"keyFile,omitempty"`
	Issuer   string `yaml:"issuer,omitempty" json:"issuer,omitempty"`
}

// Hardware declares the expected hardware of the node.
type Hardware struct {
	Platform string  `yaml:"platform,omitempty" json:"platform,omitempty"`
	CPU      CPU     `yaml:"cpu,omitempty" json:"cpu,omitempty"`
	MemoryGB float64 `yaml:"memoryGb,omitempty" json:"memoryGb,omitempty"`
	Disks    []Disk  `yaml:"disks,omitempty" json:"disks,omitempty"`
	GPUs     []GPU   `yaml:"gpus,omitempty" json:"gpus,omitempty"`
	NICs     []NIC   `yaml:"networkInterfaces,omitempty" json:"networkInterfaces,omitempty"`
	Kernel   Kernel  `yaml:"kernel,omitempty" json:"kernel,omitempty"`
}

// CPU declares the expected processor.
type CPU struct {
	Vendor  string `yaml:"vendor,omitempty" json:"vendor,omitempty"`
	Model   string `yaml:"model,omitempty" json:"model,omitempty"`
	Cores   int    `yaml:"cores,omitempty" json:"cores,omitempty"`
	Threads int    `yaml:"threads,omitempty" json:"threads,omitempty"`
}

// Disk declares one expected block device.
type Disk struct {
	Device     string `yaml:"device" json:"device"`
	Size       string `yaml:"size,omitempty" json:"size,omitempty"`
	Type       string `yaml:"type,omitempty" json:"type,omitempty"`
	MountPoint string `yaml:"mountPoint,omitempty" json:"mountPoint,omitempty"`
}

// GPU declares one expected graphics device.
type GPU struct {
	Vendor string `yaml:"vendor" json:"vendor"`
	Model  string `yaml:"model,omitempty" json:"model,omitempty"`
	VRAMMB int    `yaml:"vramMb,omitempty" json:"vramMb,omitempty"`
}

// NIC declares one expected network interface.
type NIC struct {
	Name      string `yaml:"name" json:"name"`
	MAC       string `yaml:"mac,omitempty" json:"mac,omitempty"`
	SpeedMbps int    `yaml:"speedMbps,omitempty" json:"speedMbps,omitempty"`
}

// Kernel declares modules and boot parameters.
type Kernel struct {
	Modules []string `yaml:"modules,omitempty" json:"modules,omitempty"`
	Params  []string `yaml:"params,omitempty" json:"params,omitempty"`
}

// Network declares addressing, firewall, and peering configuration.
type Network struct {
	Interfaces map[string]NetworkInterface `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Hosts      map[string]string           `yaml:"hosts,omitempty" json:"hosts,omitempty"`
	Firewall   Firewall                    `yaml:"firewall,omitempty" json:"firewall,omitempty"`
	DNSServers []string                    `yaml:"dnsServers,omitempty" json:"dnsServers,omitempty"`
	NTPServers []string                    `yaml:"ntpServers,omitempty" json:"ntpServers,omitempty"`
	VPN        []VPNPeer                   `yaml:"vpn,omitempty" json:"vpn,omitempty"`
}

// NetworkInterface declares static addressing for one interface.
type NetworkInterface struct {
	Address      string `yaml:"address,omitempty" json:"address,omitempty"`
	PrefixLength int    `yaml:"prefixLength,omitempty" json:"prefixLength,omitempty"`
	Gateway      string `yaml:"gateway,omitempty" json:"gateway,omitempty"`
	MAC          string `yaml:"mac,omitempty" json:"mac,omitempty"`
	MTU          int    `yaml:"mtu,omitempty" json:"mtu,omitempty"`
}

// Firewall declares allowed ports and raw rules.
type Firewall struct {
	AllowedTCPPorts []int    `yaml:"allowedTcpPorts,omitempty" json:"allowedTcpPorts,omitempty"`
	AllowedUDPPorts []int    `yaml:"allowedUdpPorts,omitempty" json:"allowedUdpPorts,omitempty"`
	Rules           []string `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// VPNPeer declares one wireguard-style peer.
type VPNPeer struct {
	PublicKey  string   `yaml:"publicKey,omitempty" json:"publicKey,omitempty"`
	Endpoint   string   `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	AllowedIPs []string `yaml:"allowedIps,omitempty" json:"allowedIps,omitempty"`
}

// Nix declares package-store settings.
type Nix struct {
	TrustedUsers []string `yaml:"trustedUsers,omitempty" json:"trustedUsers,omitempty"`
	Substituters []string `yaml:"substituters,omitempty" json:"substituters,omitempty"`
}

// Kubernetes declares the node's cluster membership.
type Kubernetes struct {
	Role        string            `yaml:"role,omitempty" json:"role,omitempty"`
	ClusterCIDR string            `yaml:"clusterCidr,omitempty" json:"clusterCidr,omitempty"`
	ServiceCIDR string            `yaml:"serviceCidr,omitempty" json:"serviceCidr,omitempty"`
	ServerAddr  string            `yaml:"serverAddr,omitempty" json:"serverAddr,omitempty"`
	NodeLabels  map[string]string `yaml:"nodeLabels,omitempty" json:"nodeLabels,omitempty"`
	NodeTaints  []string          `yaml:"nodeTaints,omitempty" json:"nodeTaints,omitempty"`
}

// Services declares custom services the node should run.
type Services struct {
	Custom []CustomService `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// CustomService is one declared service with its health endpoint.
type CustomService struct {
	Name           string `yaml:"name" json:"name"`
	Port           int    `yaml:"port,omitempty" json:"port,omitempty"`
	HealthEndpoint string `yaml:"healthEndpoint,omitempty" json:"healthEndpoint,omitempty"`
	Protocol       string `yaml:"protocol,omitempty" json:"protocol,omitempty"`
}

// Git declares the committer configuration deployed to the node.
type Git struct {
	UserName  string `yaml:"userName,omitempty" json:"userName,omitempty"`
	UserEmail string `yaml:"userEmail,omitempty" json:"userEmail,omitempty"`
}

// Fleet declares how the node participates in a managed fleet.
type Fleet struct {
	Controller         string              `yaml:"controller,omitempty" json:"controller,omitempty"`
	Environment        string              `yaml:"environment,omitempty" json:"environment,omitempty"`
	Owner              string              `yaml:"owner,omitempty" json:"owner,omitempty"`
	Team               string              `yaml:"team,omitempty" json:"team,omitempty"`
	Tags               []string            `yaml:"tags,omitempty" json:"tags,omitempty"`
	MaintenanceWindows []MaintenanceWindow `yaml:"maintenanceWindows,omitempty" json:"maintenanceWindows,omitempty"`
	Dependencies       []string            `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Peers              []Peer              `yaml:"peers,omitempty" json:"peers,omitempty"`
}

// MaintenanceWindow is one recurring maintenance slot.
type MaintenanceWindow struct {
	Day           string `yaml:"day,omitempty" json:"day,omitempty"`
	StartHour     int    `yaml:"startHour,omitempty" json:"startHour,omitempty"`
	DurationHours int    `yaml:"durationHours,omitempty" json:"durationHours,omitempty"`
}

// Peer is one fleet peer reachable over SSH.
type Peer struct {
	Name     string `yaml:"name" json:"name"`
	Hostname string `yaml:"hostname" json:"hostname"`
	SSHUser  string `yaml:"sshUser,omitempty" json:"sshUser,omitempty"`
}
