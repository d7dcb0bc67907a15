package k8s

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/tidwall/gjson"
)

// KubectlClient implements Client by shelling out to kubectl and parsing
// its JSON output. Selected when the user's cluster auth runs through
// kubectl plugins that a direct API connection cannot use.
type KubectlClient struct{}

// NewKubectlClient creates a new kubectl-based client
func NewKubectlClient() *KubectlClient {
	return &KubectlClient{}
}

// runCmd executes a kubectl command with timeout
func (c *KubectlClient) runCmd(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "kubectl", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// CombinedOutput keeps stderr, which explains WHY kubectl failed
		return nil, fmt.Errorf("%v: %s", err, string(out))
	}
	return out, nil
}

// ListPods returns pod names in a namespace
func (c *KubectlClient) ListPods(ctx context.Context, namespace string) ([]string, error) {
	out, err := c.runCmd(ctx, "get", "pods", "-n", namespace, "-o", "json")
	if err != nil {
		return nil, err
	}

	var names []string
	gjson.GetBytes(out, "items.#.metadata.name").ForEach(func(_, name gjson.Result) bool {
		names = append(names, name.String())
		return true
	})
	return names, nil
}

// ListFailedReplicaSets returns the names of replica sets with a
// ReplicaFailure condition
func (c *KubectlClient) ListFailedReplicaSets(ctx context.Context, namespace string) ([]string, error) {
	out, err := c.runCmd(ctx, "get", "replicasets", "-n", namespace, "-o", "json")
	if err != nil {
		return nil, err
	}

	var failed []string
	gjson.GetBytes(out, "items").ForEach(func(_, rs gjson.Result) bool {
		rs.Get("status.conditions").ForEach(func(_, condition gjson.Result) bool {
			if condition.Get("type").String() == "ReplicaFailure" {
				failed = append(failed, rs.Get("metadata.name").String())
				return false
			}
			return true
		})
		return true
	})
	return failed, nil
}

// ListNamespaces returns all namespace names in the cluster
func (c *KubectlClient) ListNamespaces(ctx context.Context) ([]string, error) {
	out, err := c.runCmd(ctx, "get", "namespaces", "-o", "json")
	if err != nil {
		return nil, err
	}

	var names []string
	gjson.GetBytes(out, "items.#.metadata.name").ForEach(func(_, name gjson.Result) bool {
		names = append(names, name.String())
		return true
	})
	return names, nil
}

// ListEvents returns events for the namespace, filtered server-side
func (c *KubectlClient) ListEvents(ctx context.Context, namespace, name string, nonNormalOnly bool) ([]Event, error) {
	args := []string{"get", "events", "-n", namespace, "-o", "json"}
	if selector := eventFieldSelector(name, nonNormalOnly); selector != "" {
		args = append(args, "--field-selector", selector)
	}

	out, err := c.runCmd(ctx, args...)
	if err != nil {
		return nil, err
	}

	var events []Event
	gjson.GetBytes(out, "items").ForEach(func(_, item gjson.Result) bool {
		event := Event{
			Namespace: item.Get("metadata.namespace").String(),
			Name:      item.Get("involvedObject.name").String(),
			Kind:      item.Get("involvedObject.kind").String(),
			Reason:    item.Get("reason").String(),
			Message:   item.Get("message").String(),
			Type:      item.Get("type").String(),
			Count:     int32(item.Get("count").Int()),
			Source:    item.Get("source.component").String(),
		}
		if t, err := time.Parse(time.RFC3339, item.Get("firstTimestamp").String()); err == nil {
			event.FirstSeen = &t
		}
		if t, err := time.Parse(time.RFC3339, item.Get("lastTimestamp").String()); err == nil {
			event.LastSeen = &t
		}
		events = append(events, event)
		return true
	})
	return events, nil
}
