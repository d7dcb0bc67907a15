package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devpopsdotin/kge/internal/k8s"
)

func TestScanNamespaceArg(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"--complete-pod", "-n", "team-a"}, "team-a"},
		{"long flag", []string{"--complete-pod", "--namespace", "team-b"}, "team-b"},
		{"long flag equals", []string{"--namespace=team-c"}, "team-c"},
		{"short flag equals", []string{"-n=team-d"}, "team-d"},
		{"missing value", []string{"--complete-pod", "-n"}, ""},
		{"no flag", []string{"--complete-pod"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scanNamespaceArg(tc.args); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCompletePods_PodsThenFailedReplicaSets(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		if namespace != "team-a" {
			return nil, errors.New("wrong namespace")
		}
		return []string{"a", "b"}, nil
	}
	mock.ListFailedReplicaSetsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return []string{"rs-1"}, nil
	}

	app, out := testApp(mock)
	err := app.completePods(context.Background(), []string{"--complete-pod", "-n", "team-a"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.String() != "a b rs-1\n" {
		t.Errorf("Expected space-joined listing, got %q", out.String())
	}
}

func TestCompletePods_ListFailureStillSucceeds(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListPodsFunc = func(ctx context.Context, namespace string) ([]string, error) {
		return nil, errors.New("connection refused")
	}

	app, out := testApp(mock)
	err := app.completePods(context.Background(), []string{"-n", "team-a"})
	if err != nil {
		t.Fatalf("Expected completion to always succeed, got %v", err)
	}
	if out.String() != "\n" {
		t.Errorf("Expected an empty line, got %q", out.String())
	}
}

func TestCompleteNamespaces(t *testing.T) {
	mock := k8s.NewMockClient()
	mock.ListNamespacesFunc = func(ctx context.Context) ([]string, error) {
		return []string{"default", "kube-system"}, nil
	}

	app, out := testApp(mock)
	if err := app.completeNamespaces(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out.String() != "default kube-system\n" {
		t.Errorf("Expected space-joined namespaces, got %q", out.String())
	}
}

func TestZshCompletionScript_ReferencesCompletionFlags(t *testing.T) {
	for _, needle := range []string{"--complete-ns", "--complete-pod", "compdef _kge kge"} {
		if !strings.Contains(zshCompletionScript, needle) {
			t.Errorf("Expected completion script to contain %q", needle)
		}
	}
}
