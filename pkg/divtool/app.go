package divtool

// Package divtool contains the human-facing CLI commands:
// - "solve"  : solve a FairDivision manifest locally and print the report
// - "region" : print the geometry of a manifest's attainable region
// - "info"   : describe the solver and its limits
// - "submit" : create or update a FairDivision in the cluster
// - "list"   : list FairDivisions and their status
// - "get"    : show one FairDivision's solved status

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/config"
	"fairdiv/pkg/division"
)

// App holds the solver, its configuration and, for cluster commands, a client.
type App struct {
	Client client.Client
	Config *config.Config
	Solver *division.Solver
	Out    io.Writer
}

// NewLocalApp builds an App for commands that do not talk to a cluster.
// Configuration comes from defaults and FAIRDIV_* environment variables.
func NewLocalApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, nil), nil
}

// NewApp builds an App using kubeconfig (or in-cluster config). The
// configuration is read from the cluster's fairdiv ConfigMap when present.
func NewApp(ctx context.Context) (*App, error) {
	restConfig, err := buildConfig()
	if err != nil {
		return nil, fmt.Errorf("build kube config: %w", err)
	}
	cs, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}
	cfg, err := config.LoadConfig(ctx, cs)
	if err != nil {
		return nil, err
	}
	c, err := client.New(restConfig, client.Options{Scheme: newScheme()})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return newApp(cfg, c), nil
}

func newApp(cfg *config.Config, c client.Client) *App {
	return &App{
		Client: c,
		Config: cfg,
		Solver: division.NewSolver(cfg.SolverOptions()),
		Out:    os.Stdout,
	}
}

func newScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = v1alpha1.AddToScheme(scheme)
	return scheme
}

// WithTimeout returns a context with a sensible default timeout for commands.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// buildConfig prefers KUBECONFIG, then ~/.kube/config, then in-cluster config.
func buildConfig() (*rest.Config, error) {
	var kubeconfigPath string
	if env := os.Getenv("KUBECONFIG"); env != "" {
		kubeconfigPath = env
	} else if home := homedir.HomeDir(); home != "" {
		kubeconfigPath = filepath.Join(home, ".kube", "config")
	}

	if kubeconfigPath != "" {
		if _, err := os.Stat(kubeconfigPath); err == nil {
			if cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath); err == nil {
				return cfg, nil
			}
		}
	}

	return rest.InClusterConfig()
}

// IsClusterCommand reports whether cmd needs a cluster connection.
func IsClusterCommand(cmd string) bool {
	switch cmd {
	case "submit", "list", "get":
		return true
	}
	return false
}

// PrintGlobalUsage prints CLI help.
func PrintGlobalUsage() {
	fmt.Println("fairdiv: two-party fair division of divisible and indivisible goods")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fairdiv <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  solve     Solve a FairDivision manifest locally and print every division found")
	fmt.Println("  region    Print the attainable region of a manifest for plotting")
	fmt.Println("  info      Show solver information and limits")
	fmt.Println("  submit    Create or update a FairDivision in the cluster")
	fmt.Println("  list      List FairDivisions and their status")
	fmt.Println("  get       Show the solved status of one FairDivision")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fairdiv solve -f mergers.yaml")
	fmt.Println("  fairdiv solve -f divorce.yaml -o yaml -debug")
	fmt.Println("  fairdiv region -f mergers.yaml -solution fair")
	fmt.Println("  fairdiv submit -f mergers.yaml -namespace default")
	fmt.Println("  fairdiv get -namespace default -name mergers")
}
