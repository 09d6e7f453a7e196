package main

import (
	"context"
	"flag"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/config"
	"fairdiv/pkg/controller"
	"fairdiv/pkg/division"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	ctrl.SetLogger(klog.NewKlogr())

	restConfig := ctrl.GetConfigOrDie()

	k8sClient, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		klog.Fatalf("Failed to create Kubernetes client: %v", err)
	}

	cfg, err := config.LoadConfig(context.Background(), k8sClient)
	if err != nil {
		klog.Fatalf("Failed to load configuration: %v", err)
	}

	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		klog.Fatalf("Failed to register core types: %v", err)
	}
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		klog.Fatalf("Failed to register fairdiv types: %v", err)
	}

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: cfg.MetricsBindAddress},
		HealthProbeBindAddress: cfg.HealthProbeBindAddress,
		LeaderElection:         cfg.LeaderElection,
		LeaderElectionID:       "fairdiv-controller.fairdiv.io",
	})
	if err != nil {
		klog.Fatalf("Failed to create manager: %v", err)
	}

	reconciler := &controller.FairDivisionReconciler{
		Client:       mgr.GetClient(),
		Scheme:       mgr.GetScheme(),
		Recorder:     mgr.GetEventRecorderFor("fairdiv-controller"),
		Solver:       division.NewSolver(cfg.SolverOptions()),
		DefaultTotal: cfg.DefaultTotal,
	}
	if err := reconciler.SetupWithManager(mgr); err != nil {
		klog.Fatalf("Failed to set up FairDivision controller: %v", err)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		klog.Fatalf("Failed to add health check: %v", err)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		klog.Fatalf("Failed to add ready check: %v", err)
	}

	klog.InfoS("Starting fairdiv controller")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		klog.Fatalf("Controller error: %v", err)
	}
}
