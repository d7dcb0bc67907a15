package k8s

import (
	"context"
	"log/slog"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// ClientGoClient implements Client using client-go
type ClientGoClient struct {
	clientset kubernetes.Interface
}

// NewClientGoClient creates a client from the ambient kube configuration:
// the kubeconfig pointed at by KUBECONFIG (or ~/.kube/config), falling back
// to the in-cluster service-account config.
func NewClientGoClient() (*ClientGoClient, error) {
	config, err := loadRestConfig()
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, err
	}

	return &ClientGoClient{clientset: clientset}, nil
}

func loadRestConfig() (*rest.Config, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err == nil {
		return config, nil
	}

	if inCluster, icErr := rest.InClusterConfig(); icErr == nil {
		return inCluster, nil
	}
	return nil, err
}

// ListPods returns pod names in a namespace
func (c *ClientGoClient) ListPods(ctx context.Context, namespace string) ([]string, error) {
	slog.Debug("listing pods", "namespace", namespace)

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Error("failed to list pods", "namespace", namespace, "error", err)
		return nil, HandleK8sError(err, "pods", namespace)
	}

	names := make([]string, len(pods.Items))
	for i, pod := range pods.Items {
		names[i] = pod.Name
	}

	slog.Debug("pods listed", "namespace", namespace, "count", len(names))
	return names, nil
}

// ListFailedReplicaSets returns the names of replica sets with a
// ReplicaFailure condition
func (c *ClientGoClient) ListFailedReplicaSets(ctx context.Context, namespace string) ([]string, error) {
	slog.Debug("listing replica sets", "namespace", namespace)

	replicaSets, err := c.clientset.AppsV1().ReplicaSets(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Error("failed to list replica sets", "namespace", namespace, "error", err)
		return nil, HandleK8sError(err, "replica sets", namespace)
	}

	var failed []string
	for _, rs := range replicaSets.Items {
		for _, condition := range rs.Status.Conditions {
			if condition.Type == appsv1.ReplicaSetReplicaFailure {
				failed = append(failed, rs.Name)
				break
			}
		}
	}

	slog.Debug("replica sets listed", "namespace", namespace, "failed", len(failed))
	return failed, nil
}

// ListNamespaces returns all namespace names in the cluster
func (c *ClientGoClient) ListNamespaces(ctx context.Context) ([]string, error) {
	slog.Debug("listing namespaces")

	namespaces, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Error("failed to list namespaces", "error", err)
		return nil, HandleK8sError(err, "namespaces", "")
	}

	names := make([]string, len(namespaces.Items))
	for i, ns := range namespaces.Items {
		names[i] = ns.Name
	}

	return names, nil
}

// ListEvents returns events for the namespace, filtered server-side
func (c *ClientGoClient) ListEvents(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error) {
	selector := eventFieldSelector(name, nonNormalOnly)
	slog.Debug("listing events", "namespace", namespace, "fieldSelector", selector)

	events, err := c.clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{
		FieldSelector: selector,
	})
	if err != nil {
		slog.Error("failed to list events", "namespace", namespace, "error", err)
		return nil, HandleK8sError(err, "events", namespace)
	}

	result := make([]Event, len(events.Items))
	for i, e := range events.Items {
		result[i] = convertEvent(e)
	}

	slog.Debug("events listed", "namespace", namespace, "count", len(result))
	return result, nil
}
