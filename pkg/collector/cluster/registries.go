package cluster

import (
	"sort"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"
)

// podImageRegistries returns the sorted set of registries the pods' images
// are pulled from. References are normalized first, so bare images like
// "nginx:latest" resolve to docker.io.
func podImageRegistries(pods []corev1.Pod) []string {
	seen := map[string]bool{}
	for _, pod := range pods {
		for _, container := range pod.Spec.Containers {
			named, err := reference.ParseNormalizedNamed(container.Image)
			if err != nil {
				continue
			}
			seen[reference.Domain(named)] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	registries := make([]string, 0, len(seen))
	for registry := range seen {
		registries = append(registries, registry)
	}
	sort.Strings(registries)
	return registries
}
