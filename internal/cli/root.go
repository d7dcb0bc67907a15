package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devpopsdotin/kge/internal/format"
	"github.com/devpopsdotin/kge/internal/k8s"
)

const version = "0.5.0"

var (
	allEvents       bool
	exceptionsOnly  bool
	namespaceFlag   string
	outputFormat    string
	absoluteTime    bool
	completePod     bool
	completeNS      bool
	completionShell string
)

var rootCmd = &cobra.Command{
	Use:   "kge [pod]",
	Short: "View Kubernetes events",
	Long: `View Kubernetes events for pods, failed replica sets or a whole namespace.

Try "kge -ea" to see all pods with abnormal events.
Run "source <(kge --completion zsh)" to enable zsh completion for pods and namespaces.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.BoolVarP(&allEvents, "all", "a", false, "get events for all pods")
	flags.BoolVarP(&exceptionsOnly, "exceptions-only", "e", false, "show only non-normal events")
	flags.StringVarP(&namespaceFlag, "namespace", "n", "", "namespace to use")
	flags.StringVarP(&outputFormat, "output", "o", format.OutputText, "output format: text, json or yaml")
	flags.BoolVar(&absoluteTime, "absolute-time", false, "print absolute timestamps instead of relative ages")
	flags.BoolP("version", "v", false, "show version information and exit")

	flags.BoolVar(&completePod, "complete-pod", false, "list pods and failed replica sets for shell completion")
	flags.BoolVar(&completeNS, "complete-ns", false, "list namespaces for shell completion")
	flags.StringVar(&completionShell, "completion", "", "emit a shell integration script (zsh)")
	_ = flags.MarkHidden("complete-pod")
	_ = flags.MarkHidden("complete-ns")
	_ = flags.MarkHidden("completion")

	_ = viper.BindPFlag("namespace", flags.Lookup("namespace"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("kge {{.Version}}\n")
}

func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(".kge")

	viper.SetDefault("client", "client-go")
	viper.SetEnvPrefix("KGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if completionShell != "" {
		if completionShell != "zsh" {
			return fmt.Errorf("unsupported completion shell %q", completionShell)
		}
		fmt.Fprintln(out, zshCompletionScript)
		return nil
	}

	output := viper.GetString("output")
	switch output {
	case format.OutputText, format.OutputJSON, format.OutputYAML:
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}

	client, err := newClient()

	// Completion feeds print whatever they can and always succeed;
	// consumers tolerate an empty line.
	if completePod || completeNS {
		if err != nil {
			slog.Error("client unavailable for completion", "error", err)
			fmt.Fprintln(out)
			return nil
		}
		app := newApp(client, out)
		if completePod {
			return app.completePods(ctx, os.Args[1:])
		}
		return app.completeNamespaces(ctx)
	}

	if err != nil {
		return fmt.Errorf("initializing kubernetes client: %w", err)
	}

	app := newApp(client, out)
	app.nonNormalOnly = exceptionsOnly
	app.render = format.Options{Output: output, Absolute: absoluteTime}

	namespace := app.resolver.Resolve(viper.GetString("namespace"))
	app.header("Using namespace: " + namespace)

	if len(args) == 1 {
		return app.runPod(ctx, namespace, args[0])
	}
	if allEvents {
		return app.runAll(ctx, namespace)
	}
	return app.runInteractive(ctx, namespace)
}

func newClient() (k8s.Client, error) {
	if viper.GetString("client") == "kubectl" {
		return k8s.NewKubectlClient(), nil
	}
	return k8s.NewClientGoClient()
}
