package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devpopsdotin/kge/internal/k8s"
)

func testApp(client k8s.Client) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return newApp(client, out), out
}

func TestMenuResources_PodsThenFailedReplicaSets(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return []string{"a", "b"}, nil
	}
	mock.ListFailedReplicaSetsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return []string{"b", "rs-1"}, nil
	}

	app, _ := testApp(mock)
	resources, err := app.menuResources(context.Background(), "default")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Concatenation without deduplication, pods first
	want := []string{"a", "b", "b", "rs-1"}
	if len(resources) != len(want) {
		t.Fatalf("Expected %v, got %v", want, resources)
	}
	for i := range want {
		if resources[i] != want[i] {
			t.Errorf("Expected %q at position %d, got %q", want[i], i, resources[i])
		}
	}
}

func TestMenuResources_ReplicaSetFailureIsNonFatal(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return []string{"a"}, nil
	}
	mock.ListFailedReplicaSetsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return nil, errors.New("apps api unavailable")
	}

	app, _ := testApp(mock)
	resources, err := app.menuResources(context.Background(), "default")
	if err != nil {
		t.Fatalf("Expected replica-set failure to be swallowed, got %v", err)
	}
	if len(resources) != 1 || resources[0] != "a" {
		t.Errorf("Expected pods only, got %v", resources)
	}
}

func TestMenuResources_PodFailureIsFatal(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return nil, errors.New("connection refused")
	}

	app, _ := testApp(mock)
	if _, err := app.menuResources(context.Background(), "default"); err == nil {
		t.Error("Expected pod listing failure to propagate")
	}
}

func TestListPods_CachesWithinTTL(t *testing.T) {
	calls := 0
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	app, _ := testApp(mock)
	ctx := context.Background()
	app.listPods(ctx, "default")
	app.listPods(ctx, "default")

	if calls != 1 {
		t.Errorf("Expected one remote call for two reads within the TTL, got %d", calls)
	}
}

func TestDispatch_SingleSelectsPodByIndex(t *testing.T) {
	var gotName string
	var gotNonNormal bool
	mock := k8s.NewMockClient()
	mock.ListEventsFunc = func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]k8s.Event, error) {
		gotName = name
		gotNonNormal = nonNormalOnly
		return nil, nil
	}

	app, _ := testApp(mock)
	err := app.dispatch(context.Background(), "default", []string{"a", "b"}, selection{kind: selectIndex, index: 2})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotName != "b" {
		t.Errorf("Expected a query for pod b, got %q", gotName)
	}
	if gotNonNormal {
		t.Error("Expected no type restriction when exceptions-only is unset")
	}
}

func TestDispatch_NonNormalOverridesAmbientFlag(t *testing.T) {
	var gotName string
	var gotNonNormal bool
	mock := k8s.NewMockClient()
	mock.ListEventsFunc = func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]k8s.Event, error) {
		gotName = name
		gotNonNormal = nonNormalOnly
		return nil, nil
	}

	app, _ := testApp(mock)
	app.nonNormalOnly = false

	if err := app.dispatch(context.Background(), "default", []string{"a"}, selection{kind: selectNonNormal}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotName != "" {
		t.Errorf("Expected a whole-namespace query, got %q", gotName)
	}
	if !gotNonNormal {
		t.Error("Expected the e choice to force the non-normal filter")
	}
}

func TestDispatch_QuitIssuesNoQuery(t *testing.T) {
	queried := false
	mock := k8s.NewMockClient()
	mock.ListEventsFunc = func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]k8s.Event, error) {
		queried = true
		return nil, nil
	}

	app, out := testApp(mock)
	if err := app.dispatch(context.Background(), "default", []string{"a"}, selection{kind: selectQuit}); err != nil {
		t.Fatalf("Expected quit to succeed, got %v", err)
	}
	if queried {
		t.Error("Expected no event query on quit")
	}
	if !strings.Contains(out.String(), "Exiting gracefully") {
		t.Errorf("Expected a graceful exit message, got %q", out.String())
	}
}

func TestRunInteractive_NoPodsIsInformational(t *testing.T) {
	mock := k8s.NewMockClient()

	app, out := testApp(mock)
	if err := app.runInteractive(context.Background(), "default"); err != nil {
		t.Fatalf("Expected empty namespace to be informational, got %v", err)
	}
	if !strings.Contains(out.String(), "No pods found in namespace default") {
		t.Errorf("Expected a no-pods message, got %q", out.String())
	}
}

func TestRunPod_QueryFailurePropagates(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListEventsFunc = func(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]k8s.Event, error) {
		return nil, errors.New("connection refused")
	}

	app, _ := testApp(mock)
	if err := app.runPod(context.Background(), "default", "web-0"); err == nil {
		t.Error("Expected query failure to propagate")
	}
}
