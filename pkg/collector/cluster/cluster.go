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

// Package cluster probes the local Kubernetes node through the cluster
// API, when one is reachable.
package cluster

import (
	"context"
	"log/slog"
	"os"

	"github.com/nodescope/nodescope/pkg/report"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Probe collects the optional cluster section.
type Probe struct{}

// Collect returns nil when no cluster credentials are present; a node
// outside any cluster is the normal case, not a failure. With a reachable
// cluster, API errors are real errors.
func (p *Probe) Collect(ctx context.Context) (*report.Cluster, error) {
	client, err := kubeClient()
	if err != nil {
		slog.Debug("no kubernetes cluster detected", slog.String("reason", err.Error()))
		return nil, nil
	}

	sect := &report.Cluster{}

	if version, err := client.Discovery().ServerVersion(); err == nil {
		sect.ServerVersion = version.GitVersion
	}

	if err := p.collectNode(ctx, client, sect); err != nil {
		return nil, err
	}

	pods, err := client.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	sect.PodCount = len(pods.Items)
	aggregateResources(pods.Items, sect)
	sect.ImageRegistries = podImageRegistries(pods.Items)

	namespaces, err := client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	sect.NamespaceCount = len(namespaces.Items)

	return sect, nil
}

// collectNode resolves the local node by hostname, falling back to the
// first listed node on single-node clusters with mismatched names.
func (p *Probe) collectNode(ctx context.Context, client kubernetes.Interface, sect *report.Cluster) error {
	nodes, err := client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return err
	}
	if len(nodes.Items) == 0 {
		return nil
	}

	node := &nodes.Items[0]
	if hostname, err := os.Hostname(); err == nil {
		for i := range nodes.Items {
			if nodes.Items[i].Name == hostname {
				node = &nodes.Items[i]
				break
			}
		}
	}

	for _, cond := range node.Status.Conditions {
		sect.Conditions = append(sect.Conditions, report.ClusterCondition{
			Type:    string(cond.Type),
			Status:  string(cond.Status),
			Message: cond.Message,
		})
		if cond.Type == corev1.NodeReady {
			sect.NodeReady = cond.Status == corev1.ConditionTrue
		}
	}
	return nil
}

// aggregateResources sums container requests and limits across all pods.
func aggregateResources(pods []corev1.Pod, sect *report.Cluster) {
	for _, pod := range pods {
		for _, container := range pod.Spec.Containers {
			if cpu := container.Resources.Requests.Cpu(); cpu != nil {
				sect.CPURequestsMillis += cpu.MilliValue()
			}
			if cpu := container.Resources.Limits.Cpu(); cpu != nil {
				sect.CPULimitsMillis += cpu.MilliValue()
			}
			if mem := container.Resources.Requests.Memory(); mem != nil {
				sect.MemRequestsBytes += mem.Value()
			}
			if mem := container.Resources.Limits.Memory(); mem != nil {
				sect.MemLimitsBytes += mem.Value()
			}
		}
	}
}
