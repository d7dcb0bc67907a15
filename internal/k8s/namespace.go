package k8s

import (
	"log/slog"
	"sync"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/tools/clientcmd"
)

// Resolver determines the active namespace for a run. The ambient
// kube-context lookup happens at most once per resolver; an explicit
// override always wins and is never cached.
type Resolver struct {
	once   sync.Once
	cached string
	lookup func() (string, error)
}

// NewResolver creates a resolver backed by the ambient kubeconfig
func NewResolver() *Resolver {
	return &Resolver{lookup: contextNamespace}
}

// Resolve returns the explicit namespace when given, otherwise the
// memoized kube-context namespace, falling back to "default" when the
// context has none or the lookup fails.
func (r *Resolver) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}

	r.once.Do(func() {
		ns, err := r.lookup()
		if err != nil || ns == "" {
			if err != nil {
				slog.Debug("falling back to default namespace", "error", err)
			}
			ns = metav1.NamespaceDefault
		}
		r.cached = ns
	})
	return r.cached
}

func contextNamespace() (string, error) {
	ns, _, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).Namespace()
	return ns, err
}
