package cluster

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

var (
	clientOnce   sync.Once
	cachedClient *kubernetes.Clientset
	clientErr    error
)

// kubeClient returns a singleton Kubernetes client, creating it on first
// call. In-cluster credentials win; otherwise KUBECONFIG or the default
// kubeconfig in the user's home directory is used.
func kubeClient() (*kubernetes.Clientset, error) {
	clientOnce.Do(func() {
		cachedClient, clientErr = buildKubeClient()
	})
	return cachedClient, clientErr
}

func buildKubeClient() (*kubernetes.Clientset, error) {
	config, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := os.Getenv("KUBECONFIG")
		if kubeconfig == "" {
			kubeconfig = filepath.Join(homedir.HomeDir(), ".kube", "config")
			if _, err := os.Stat(kubeconfig); os.IsNotExist(err) {
				return nil, fmt.Errorf("no cluster credentials available")
			}
		}
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config: %w", err)
		}
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return client, nil
}
