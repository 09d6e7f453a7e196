package controller

// Package controller solves FairDivision resources. Each reconcile runs the
// division pipeline once per spec generation and records every division
// found in the status.

import (
	"context"
	"errors"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/division"
	"fairdiv/pkg/metrics"
)

const (
	// PhaseSolved indicates the solver ran for the observed generation.
	PhaseSolved = "Solved"
	// PhaseInvalid indicates the problem was rejected.
	PhaseInvalid = "Invalid"

	ReasonSolved             = "Solved"
	ReasonInvalidInput       = "InvalidInput"
	ReasonDegenerateBoundary = "DegenerateBoundary"
	ReasonTooManyItems       = "TooManyItems"
	ReasonSolveFailed        = "SolveFailed"
)

// FairDivisionReconciler reconciles FairDivision objects.
type FairDivisionReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	// Solver runs the division pipeline. Nil means default options.
	Solver *division.Solver

	// DefaultTotal replaces an unset spec.total. Zero means division.DefaultTotal.
	DefaultTotal float64
}

// SetupWithManager sets up the controller with the Manager.
// Status-only updates do not change the generation and are filtered out.
func (r *FairDivisionReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.FairDivision{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}

// Reconcile solves the division described by the object's spec.
func (r *FairDivisionReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	fd := &v1alpha1.FairDivision{}
	if err := r.Get(ctx, req.NamespacedName, fd); err != nil {
		if apierrors.IsNotFound(err) {
			metrics.ClearDivisionMetrics(req.Namespace, req.Name)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, fmt.Errorf("get FairDivision: %w", err)
	}

	if fd.Status.ObservedGeneration == fd.Generation && isTerminal(fd.Status.Phase) {
		return ctrl.Result{}, nil
	}

	problem := fd.Spec.Problem(r.defaultTotal())
	start := time.Now()
	rep, err := r.solver().Solve(problem)
	elapsed := time.Since(start)

	if err != nil {
		reason := reasonFor(err)
		metrics.RecordRejection(fd.Namespace, fd.Name, reason, elapsed)
		logger.Info("FairDivision rejected", "reason", reason, "error", err.Error())
		return r.updateStatus(ctx, fd, PhaseInvalid, reason, err.Error(), nil)
	}

	metrics.RecordSolve(fd.Namespace, fd.Name, elapsed, rep)
	logger.V(1).Info("FairDivision solved",
		"belongsTo", rep.Statement1.Summary,
		"frontier", len(rep.Frontier),
		"duration", elapsed)
	return r.updateStatus(ctx, fd, PhaseSolved, ReasonSolved, rep.Statement1.Summary, rep)
}

func (r *FairDivisionReconciler) solver() *division.Solver {
	if r.Solver == nil {
		return division.NewSolver(division.DefaultOptions())
	}
	return r.Solver
}

func (r *FairDivisionReconciler) defaultTotal() float64 {
	if r.DefaultTotal > 0 {
		return r.DefaultTotal
	}
	return division.DefaultTotal
}

// updateStatus writes the phase and, for solved problems, the report.
// Events are emitted on phase transitions and on new generations.
func (r *FairDivisionReconciler) updateStatus(ctx context.Context, fd *v1alpha1.FairDivision,
	phase, reason, message string, rep *division.Report) (ctrl.Result, error) {
	oldPhase := fd.Status.Phase
	oldGeneration := fd.Status.ObservedGeneration

	now := metav1.Now()
	fd.Status.Phase = phase
	fd.Status.Reason = reason
	fd.Status.Message = message
	fd.Status.ObservedGeneration = fd.Generation
	fd.Status.LastSolvedTime = &now
	if rep != nil {
		fd.Status.SetReport(rep)
	} else {
		fd.Status.ClearReport()
	}

	if err := r.Status().Update(ctx, fd); err != nil {
		return ctrl.Result{}, fmt.Errorf("update status: %w", err)
	}

	if oldPhase != phase || oldGeneration != fd.Generation {
		eventType := corev1.EventTypeNormal
		if phase == PhaseInvalid {
			eventType = corev1.EventTypeWarning
		}
		r.Recorder.Event(fd, eventType, reason, message)
	}

	return ctrl.Result{}, nil
}

func isTerminal(phase string) bool {
	return phase == PhaseSolved || phase == PhaseInvalid
}

// reasonFor maps solver errors to status reasons.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, division.ErrTooManyItems):
		return ReasonTooManyItems
	case errors.Is(err, division.ErrDegenerateBoundary):
		return ReasonDegenerateBoundary
	case errors.Is(err, division.ErrStructural), errors.Is(err, division.ErrDomain):
		return ReasonInvalidInput
	}
	return ReasonSolveFailed
}
