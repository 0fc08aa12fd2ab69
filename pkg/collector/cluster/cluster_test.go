package cluster

import (
	"context"
	"testing"

	"github.com/nodescope/nodescope/pkg/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func podWithImage(name, image string, requests, limits corev1.ResourceList) corev1.Pod {
	return corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{
				Name:  "main",
				Image: image,
				Resources: corev1.ResourceRequirements{
					Requests: requests,
					Limits:   limits,
				},
			}},
		},
	}
}

func TestPodImageRegistries(t *testing.T) {
	pods := []corev1.Pod{
		podWithImage("a", "nginx:latest", nil, nil),
		podWithImage("b", "ghcr.io/fluxcd/source-controller:v1.2.3", nil, nil),
		podWithImage("c", "registry.k8s.io/pause:3.9", nil, nil),
		podWithImage("d", "ghcr.io/other/image:1", nil, nil),
		podWithImage("e", ":::not-an-image", nil, nil),
	}

	registries := podImageRegistries(pods)
	assert.Equal(t, []string{"docker.io", "ghcr.io", "registry.k8s.io"}, registries)
}

func TestPodImageRegistriesEmpty(t *testing.T) {
	assert.Nil(t, podImageRegistries(nil))
}

func TestAggregateResources(t *testing.T) {
	requests := corev1.ResourceList{
		corev1.ResourceCPU:    resource.MustParse("250m"),
		corev1.ResourceMemory: resource.MustParse("128Mi"),
	}
	limits := corev1.ResourceList{
		corev1.ResourceCPU:    resource.MustParse("1"),
		corev1.ResourceMemory: resource.MustParse("256Mi"),
	}
	pods := []corev1.Pod{
		podWithImage("a", "nginx", requests, limits),
		podWithImage("b", "nginx", requests, nil),
	}

	var sect report.Cluster
	aggregateResources(pods, &sect)

	assert.Equal(t, int64(500), sect.CPURequestsMillis)
	assert.Equal(t, int64(1000), sect.CPULimitsMillis)
	assert.Equal(t, int64(2)*128*1024*1024, sect.MemRequestsBytes)
	assert.Equal(t, int64(256)*1024*1024, sect.MemLimitsBytes)
}

func TestCollectNode(t *testing.T) {
	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: "worker-1"},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeMemoryPressure, Status: corev1.ConditionFalse},
				{Type: corev1.NodeReady, Status: corev1.ConditionTrue, Message: "kubelet is posting ready status"},
			},
		},
	}
	client := fake.NewSimpleClientset(node)

	var sect report.Cluster
	p := &Probe{}
	require.NoError(t, p.collectNode(context.Background(), client, &sect))

	assert.True(t, sect.NodeReady)
	require.Len(t, sect.Conditions, 2)
	assert.Equal(t, "Ready", sect.Conditions[1].Type)
	assert.Equal(t, "True", sect.Conditions[1].Status)
}

func TestCollectNodeEmptyCluster(t *testing.T) {
	var sect report.Cluster
	p := &Probe{}
	require.NoError(t, p.collectNode(context.Background(), fake.NewSimpleClientset(), &sect))
	assert.False(t, sect.NodeReady)
	assert.Empty(t, sect.Conditions)
}
