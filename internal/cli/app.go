package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/devpopsdotin/kge/internal/cache"
	"github.com/devpopsdotin/kge/internal/format"
	"github.com/devpopsdotin/kge/internal/k8s"
	"github.com/devpopsdotin/kge/internal/ui"
)

// App wires the cluster client, namespace resolver and listing caches for
// one command invocation.
type App struct {
	client      k8s.Client
	resolver    *k8s.Resolver
	pods        *cache.Cache[string, []string]
	replicaSets *cache.Cache[string, []string]
	out         io.Writer

	nonNormalOnly bool
	render        format.Options
}

func newApp(client k8s.Client, out io.Writer) *App {
	return &App{
		client:      client,
		resolver:    k8s.NewResolver(),
		pods:        cache.New[string, []string](k8s.ResourceListTTL),
		replicaSets: cache.New[string, []string](k8s.ResourceListTTL),
		out:         out,
	}
}

func (a *App) header(msg string) {
	fmt.Fprintln(a.out, ui.StyleHeader.Render(msg))
}

func (a *App) separator() {
	fmt.Fprintln(a.out, ui.StyleHeader.Render(strings.Repeat("-", 40)))
}

func (a *App) listPods(ctx context.Context, namespace string) ([]string, error) {
	return a.pods.GetOrFetch(namespace, func() ([]string, error) {
		return a.client.ListPods(ctx, namespace)
	})
}

// listFailedReplicaSets treats lookup failures as an empty list so a
// broken apps API does not take down the menu.
func (a *App) listFailedReplicaSets(ctx context.Context, namespace string) []string {
	names, err := a.replicaSets.GetOrFetch(namespace, func() ([]string, error) {
		return a.client.ListFailedReplicaSets(ctx, namespace)
	})
	if err != nil {
		slog.Error("failed to list replica sets", "namespace", namespace, "error", err)
		return nil
	}
	return names
}

// menuResources returns pods then failed replica sets, preserving each
// source's fetch order. Names are not deduplicated across the sources.
func (a *App) menuResources(ctx context.Context, namespace string) ([]string, error) {
	pods, err := a.listPods(ctx, namespace)
	if err != nil {
		return nil, err
	}
	failed := a.listFailedReplicaSets(ctx, namespace)

	resources := make([]string, 0, len(pods)+len(failed))
	resources = append(resources, pods...)
	resources = append(resources, failed...)
	return resources, nil
}

func (a *App) printEvents(ctx context.Context, namespace, name string, nonNormalOnly bool) error {
	events, err := a.client.ListEvents(ctx, namespace, name, nonNormalOnly)
	if err != nil {
		return err
	}

	opts := a.render
	opts.Now = time.Now()
	rendered, err := format.Events(events, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, rendered)
	return nil
}

func (a *App) runPod(ctx context.Context, namespace, pod string) error {
	a.header("Getting events for pod: " + pod)
	a.separator()
	return a.printEvents(ctx, namespace, pod, a.nonNormalOnly)
}

func (a *App) runAll(ctx context.Context, namespace string) error {
	a.header("Getting events for all pods")
	a.separator()
	return a.printEvents(ctx, namespace, "", a.nonNormalOnly)
}

func (a *App) runInteractive(ctx context.Context, namespace string) error {
	a.header("Fetching pods...")

	resources, err := a.menuResources(ctx, namespace)
	if err != nil {
		return err
	}
	if len(resources) == 0 {
		fmt.Fprintln(a.out, ui.StyleEmpty.Render("No pods found in namespace "+namespace))
		return nil
	}

	sel, err := promptSelection(resources)
	if err != nil {
		return err
	}
	return a.dispatch(ctx, namespace, resources, sel)
}

// dispatch is exhaustive over the selection variants; each branch is
// terminal for the invocation.
func (a *App) dispatch(ctx context.Context, namespace string, resources []string, sel selection) error {
	switch sel.kind {
	case selectQuit:
		fmt.Fprintln(a.out, "\nExiting gracefully...")
		return nil
	case selectAll:
		fmt.Fprintln(a.out)
		a.header("Getting events for all pods")
		a.separator()
		return a.printEvents(ctx, namespace, "", a.nonNormalOnly)
	case selectNonNormal:
		fmt.Fprintln(a.out)
		a.header("Getting non-normal events for all pods")
		a.separator()
		return a.printEvents(ctx, namespace, "", true)
	case selectIndex:
		name := resources[sel.index-1]
		fmt.Fprintln(a.out)
		a.header("Getting events for pod: " + name)
		a.separator()
		return a.printEvents(ctx, namespace, name, a.nonNormalOnly)
	}
	return nil
}
