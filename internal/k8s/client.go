package k8s

import (
	"context"
	"time"
)

// Constants
const (
	// CommandTimeout bounds a single kubectl invocation
	CommandTimeout = 5 * time.Second

	// ResourceListTTL is how long cached pod and replica-set listings stay
	// fresh. Keeps a multi-query session from hammering the API while the
	// user walks through several pods.
	ResourceListTTL = 10 * time.Second
)

// Client is the interface for the Kubernetes operations kge performs
type Client interface {
	// ListPods returns the pod names in a namespace, in API order
	ListPods(ctx context.Context, namespace string) ([]string, error)

	// ListFailedReplicaSets returns the names of replica sets carrying a
	// ReplicaFailure condition
	ListFailedReplicaSets(ctx context.Context, namespace string) ([]string, error)

	// ListNamespaces returns all namespace names in the cluster
	ListNamespaces(ctx context.Context) ([]string, error)

	// ListEvents returns events for the namespace, server-side filtered to
	// the named involved object (all objects when name is empty) and to
	// non-Normal severity when nonNormalOnly is set
	ListEvents(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error)
}
