package k8s

import "context"

// MockClient is a mock implementation of Client for testing
type MockClient struct {
	ListPodsFunc              func(ctx context.Context, namespace string) ([]string, error)
	ListFailedReplicaSetsFunc func(ctx context.Context, namespace string) ([]string, error)
	ListNamespacesFunc        func(ctx context.Context) ([]string, error)
	ListEventsFunc            func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error)
}

// NewMockClient creates a new mock client with default no-op implementations
func NewMockClient() *MockClient {
	return &MockClient{
		ListPodsFunc: func(ctx context.Context, namespace string) ([]string, error) {
			return nil, nil
		},
		ListFailedReplicaSetsFunc: func(ctx context.Context, namespace string) ([]string, error) {
			return nil, nil
		},
		ListNamespacesFunc: func(ctx context.Context) ([]string, error) {
			return nil, nil
		},
		ListEventsFunc: func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error) {
			return nil, nil
		},
	}
}

func (m *MockClient) ListPods(ctx context.Context, namespace string) ([]string, error) {
	return m.ListPodsFunc(ctx, namespace)
}

func (m *MockClient) ListFailedReplicaSets(ctx context.Context, namespace string) ([]string, error) {
	return m.ListFailedReplicaSetsFunc(ctx, namespace)
}

func (m *MockClient) ListNamespaces(ctx context.Context) ([]string, error) {
	return m.ListNamespacesFunc(ctx)
}

func (m *MockClient) ListEvents(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error) {
	return m.ListEventsFunc(ctx, namespace, name, nonNormalOnly)
}
