package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// scanNamespaceArg pulls an explicit -n/--namespace out of a raw argument
// list. Completion calls arrive mid-parse from the shell, so the flag is
// scanned rather than taken from the parsed flag set.
func scanNamespaceArg(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-n" || arg == "--namespace":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--namespace="):
			return strings.TrimPrefix(arg, "--namespace=")
		case strings.HasPrefix(arg, "-n="):
			return strings.TrimPrefix(arg, "-n=")
		}
	}
	return ""
}

// completePods prints pods and failed replica sets as one space-joined
// line. Always succeeds; an empty line is fine for completion consumers.
func (a *App) completePods(ctx context.Context, rawArgs []string) error {
	namespace := scanNamespaceArg(rawArgs)
	if namespace == "" {
		namespace = a.resolver.Resolve("")
	}

	resources, err := a.menuResources(ctx, namespace)
	if err != nil {
		slog.Error("completion listing failed", "namespace", namespace, "error", err)
		resources = nil
	}

	fmt.Fprintln(a.out, strings.Join(resources, " "))
	return nil
}

// completeNamespaces prints all namespace names as one space-joined line
func (a *App) completeNamespaces(ctx context.Context) error {
	namespaces, err := a.client.ListNamespaces(ctx)
	if err != nil {
		slog.Error("completion listing failed", "error", err)
		namespaces = nil
	}

	fmt.Fprintln(a.out, strings.Join(namespaces, " "))
	return nil
}

const zshCompletionScript = `_kge() {
    local -a pods
    local -a namespaces
    namespaces=($(kge --complete-ns))

    _arguments \
        '(-n --namespace)'{-n,--namespace}'[Specify namespace to use]:namespace:->namespaces' \
        '(-e --exceptions-only)'{-e,--exceptions-only}'[Show only non-normal events]' \
        '(-a --all)'{-a,--all}'[Get events for all pods]' \
        '(-v --version)'{-v,--version}'[Show version information]' \
        '*:pod:->pods'

    case $state in
        namespaces)
            _describe 'namespaces' namespaces
            ;;
        pods)
            local namespace
            for ((i=1; i < ${#words}; i++)); do
                if [[ ${words[i]} == "-n" || ${words[i]} == "--namespace" ]]; then
                    namespace=${words[i+1]}
                    break
                fi
            done
            if [[ -n $namespace ]]; then
                pods=($(kge --complete-pod -n $namespace))
            else
                pods=($(kge --complete-pod))
            fi
            _describe 'pods' pods
            ;;
    esac
}
compdef _kge kge`
