package node

import (
	"time"

	"github.com/nodescope/nodescope/pkg/identity"
	"github.com/nodescope/nodescope/pkg/report"
)

// NodeStatus is a node's connectivity and health classification.
type NodeStatus string

const (
	StatusOnline      NodeStatus = "online"
	StatusOffline     NodeStatus = "offline"
	StatusDegraded    NodeStatus = "degraded"
	StatusMaintenance NodeStatus = "maintenance"
	StatusUnknown     NodeStatus = "unknown"
)

// Node pairs a declared identity with the latest observed report for one
// machine. It is part of the fleet data model; nothing in the daemon
// populates Drift yet.
type Node struct {
	Identity  identity.Identity `json:"identity" yaml:"identity"`
	Report    *report.Report    `json:"report,omitempty" yaml:"report,omitempty"`
	Status    NodeStatus        `json:"status" yaml:"status"`
	FirstSeen time.Time         `json:"firstSeen" yaml:"firstSeen"`
	LastSeen  *time.Time        `json:"lastSeen,omitempty" yaml:"lastSeen,omitempty"`
	Drift     []DriftItem       `json:"drift" yaml:"drift"`
}

// DriftSeverity classifies a declared-versus-observed mismatch.
type DriftSeverity string

const (
	DriftInfo     DriftSeverity = "info"
	DriftWarning  DriftSeverity = "warning"
	DriftCritical DriftSeverity = "critical"
)

// DriftItem is one mismatch between what an identity declares and what a
// report observed.
type DriftItem struct {
	Category string        `json:"category" yaml:"category"`
	Field    string        `json:"field" yaml:"field"`
	Expected string        `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string        `json:"actual,omitempty" yaml:"actual,omitempty"`
	Severity DriftSeverity `json:"severity" yaml:"severity"`
}
