// Package config loads fairdiv settings from a ConfigMap and the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/klog/v2"

	"fairdiv/pkg/division"
)

const (
	// ConfigMapNamespace and ConfigMapName locate the optional settings ConfigMap.
	ConfigMapNamespace = "fairdiv-system"
	ConfigMapName      = "fairdiv-config"

	// HardMaxIndivisibleItems bounds the configurable enumeration cap.
	// Enumeration holds 24 bytes per assignment, so 2^22 is about 96 MiB.
	HardMaxIndivisibleItems = 22
)

// Config holds all configurable parameters for the solver and the controller.
// Values can be loaded from ConfigMap or environment variables.
type Config struct {
	// MaxIndivisibleItems caps the 2^M enumeration; larger problems are
	// rejected before any work is done.
	MaxIndivisibleItems int

	// DefaultTotal is the total value H used when a problem leaves it unset.
	DefaultTotal float64

	// EfficiencyCheck selects the dominance test: "exact" tests boundary
	// segments as well as vertices, "vertices" tests vertices only.
	EfficiencyCheck string

	// MetricsBindAddress is where the controller serves Prometheus metrics.
	MetricsBindAddress string

	// HealthProbeBindAddress is where the controller serves /healthz and /readyz.
	HealthProbeBindAddress string

	// LeaderElection enables leader election for the controller manager.
	LeaderElection bool
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxIndivisibleItems:    division.MaxIndivisibleItems,
		DefaultTotal:           division.DefaultTotal,
		EfficiencyCheck:        division.EfficiencyExact.String(),
		MetricsBindAddress:     ":8080",
		HealthProbeBindAddress: ":8081",
		LeaderElection:         false,
	}
}

// LoadConfig loads configuration from ConfigMap with environment variable fallbacks.
// ConfigMap is loaded from namespace "fairdiv-system" with name "fairdiv-config".
// A nil client skips the ConfigMap; environment variables always win.
func LoadConfig(ctx context.Context, k8sClient kubernetes.Interface) (*Config, error) {
	config := DefaultConfig()

	if k8sClient != nil {
		cm, err := k8sClient.CoreV1().ConfigMaps(ConfigMapNamespace).Get(ctx, ConfigMapName, metav1.GetOptions{})
		if err != nil {
			klog.V(2).InfoS("ConfigMap not found, using defaults and environment variables", "error", err)
		} else if err := config.loadFromConfigMap(cm); err != nil {
			klog.Warningf("Error loading from ConfigMap, using defaults: %v", err)
			config = DefaultConfig()
		} else {
			klog.InfoS("Loaded configuration from ConfigMap", "namespace", ConfigMapNamespace, "name", ConfigMapName)
		}
	}

	config.loadFromEnvironment()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.Log()

	return config, nil
}

// loadFromConfigMap loads configuration values from a ConfigMap.
func (c *Config) loadFromConfigMap(cm *corev1.ConfigMap) error {
	if cm.Data == nil {
		return fmt.Errorf("ConfigMap data is nil")
	}

	data := cm.Data

	if val, ok := data["maxIndivisibleItems"]; ok && val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid maxIndivisibleItems: %w", err)
		}
		c.MaxIndivisibleItems = n
	}

	if val, ok := data["defaultTotal"]; ok && val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid defaultTotal: %w", err)
		}
		c.DefaultTotal = f
	}

	if val, ok := data["efficiencyCheck"]; ok && val != "" {
		if _, err := division.ParseEfficiencyCheck(val); err != nil {
			return fmt.Errorf("invalid efficiencyCheck: %w", err)
		}
		c.EfficiencyCheck = val
	}

	if val, ok := data["metricsBindAddress"]; ok && val != "" {
		c.MetricsBindAddress = val
	}

	if val, ok := data["healthProbeBindAddress"]; ok && val != "" {
		c.HealthProbeBindAddress = val
	}

	if val, ok := data["leaderElection"]; ok && val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid leaderElection: %w", err)
		}
		c.LeaderElection = b
	}

	return nil
}

// loadFromEnvironment loads configuration from environment variables.
// Environment variables take precedence over ConfigMap values.
func (c *Config) loadFromEnvironment() {
	// FAIRDIV_MAX_INDIVISIBLE_ITEMS
	if val := os.Getenv("FAIRDIV_MAX_INDIVISIBLE_ITEMS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.MaxIndivisibleItems = n
			klog.V(2).InfoS("Loaded MaxIndivisibleItems from environment", "value", c.MaxIndivisibleItems)
		}
	}

	// FAIRDIV_DEFAULT_TOTAL
	if val := os.Getenv("FAIRDIV_DEFAULT_TOTAL"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.DefaultTotal = f
			klog.V(2).InfoS("Loaded DefaultTotal from environment", "value", c.DefaultTotal)
		}
	}

	// FAIRDIV_EFFICIENCY_CHECK
	if val := os.Getenv("FAIRDIV_EFFICIENCY_CHECK"); val != "" {
		c.EfficiencyCheck = val
		klog.V(2).InfoS("Loaded EfficiencyCheck from environment", "value", c.EfficiencyCheck)
	}

	// FAIRDIV_METRICS_BIND_ADDRESS
	if val := os.Getenv("FAIRDIV_METRICS_BIND_ADDRESS"); val != "" {
		c.MetricsBindAddress = val
		klog.V(2).InfoS("Loaded MetricsBindAddress from environment", "value", c.MetricsBindAddress)
	}

	// FAIRDIV_HEALTH_PROBE_BIND_ADDRESS
	if val := os.Getenv("FAIRDIV_HEALTH_PROBE_BIND_ADDRESS"); val != "" {
		c.HealthProbeBindAddress = val
		klog.V(2).InfoS("Loaded HealthProbeBindAddress from environment", "value", c.HealthProbeBindAddress)
	}

	// FAIRDIV_LEADER_ELECTION
	if val := os.Getenv("FAIRDIV_LEADER_ELECTION"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.LeaderElection = b
			klog.V(2).InfoS("Loaded LeaderElection from environment", "value", c.LeaderElection)
		}
	}
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.MaxIndivisibleItems < 1 || c.MaxIndivisibleItems > HardMaxIndivisibleItems {
		return fmt.Errorf("maxIndivisibleItems must be in [1, %d], got %d", HardMaxIndivisibleItems, c.MaxIndivisibleItems)
	}
	if !(c.DefaultTotal > 0) {
		return fmt.Errorf("defaultTotal must be > 0, got %f", c.DefaultTotal)
	}
	if _, err := division.ParseEfficiencyCheck(c.EfficiencyCheck); err != nil {
		return fmt.Errorf("efficiencyCheck: %w", err)
	}
	return nil
}

// SolverOptions returns the solver options described by the configuration.
// It assumes Validate has passed.
func (c *Config) SolverOptions() division.Options {
	check, err := division.ParseEfficiencyCheck(c.EfficiencyCheck)
	if err != nil {
		check = division.EfficiencyExact
	}
	return division.Options{
		MaxIndivisibleItems: c.MaxIndivisibleItems,
		Efficiency:          check,
	}
}

// Log logs the current configuration.
func (c *Config) Log() {
	klog.InfoS("Fairdiv configuration",
		"maxIndivisibleItems", c.MaxIndivisibleItems,
		"defaultTotal", c.DefaultTotal,
		"efficiencyCheck", c.EfficiencyCheck,
		"metricsBindAddress", c.MetricsBindAddress,
		"healthProbeBindAddress", c.HealthProbeBindAddress,
		"leaderElection", c.LeaderElection,
	)
}
