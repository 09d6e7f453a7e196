package controller

import (
	"context"
	"strings"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	k8stypes "k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"fairdiv/api/v1alpha1"
	"fairdiv/pkg/division"
	"fairdiv/pkg/types"
)

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		t.Fatalf("add client-go scheme: %v", err)
	}
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		t.Fatalf("add fairdiv scheme: %v", err)
	}
	return scheme
}

func newDivision(name string, a, b types.Valuations) *v1alpha1.FairDivision {
	return &v1alpha1.FairDivision{
		ObjectMeta: metav1.ObjectMeta{
			Name:       name,
			Namespace:  "default",
			Generation: 1,
		},
		Spec: v1alpha1.FairDivisionSpec{ParticipantA: a, ParticipantB: b},
	}
}

func mergers() *v1alpha1.FairDivision {
	return newDivision("mergers",
		types.Valuations{Divisible: []float64{30}, Indivisible: []float64{25, 15, 20, 10}},
		types.Valuations{Divisible: []float64{10}, Indivisible: []float64{10, 20, 35, 25}})
}

func newReconciler(t *testing.T, solver *division.Solver, objs ...client.Object) (*FairDivisionReconciler, *record.FakeRecorder) {
	t.Helper()
	scheme := newScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.FairDivision{}).
		Build()
	recorder := record.NewFakeRecorder(10)
	return &FairDivisionReconciler{
		Client:   fakeClient,
		Scheme:   scheme,
		Recorder: recorder,
		Solver:   solver,
	}, recorder
}

func reconcileAndGet(t *testing.T, r *FairDivisionReconciler, name string) *v1alpha1.FairDivision {
	t.Helper()
	ctx := context.Background()
	key := k8stypes.NamespacedName{Namespace: "default", Name: name}
	if _, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: key}); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	fd := &v1alpha1.FairDivision{}
	if err := r.Get(ctx, key, fd); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	return fd
}

func drainEvents(rec *record.FakeRecorder) []string {
	var events []string
	for {
		select {
		case e := <-rec.Events:
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestReconcile_Solved(t *testing.T) {
	r, rec := newReconciler(t, nil, mergers())

	fd := reconcileAndGet(t, r, "mergers")

	st := fd.Status
	if st.Phase != PhaseSolved || st.Reason != ReasonSolved {
		t.Errorf("phase = %s reason = %s, want Solved", st.Phase, st.Reason)
	}
	if st.ObservedGeneration != 1 {
		t.Errorf("ObservedGeneration = %d, want 1", st.ObservedGeneration)
	}
	if !st.HasFair || st.Fair == nil {
		t.Fatal("expected a fair division in status")
	}
	if st.Fair.GainA < 62.49 || st.Fair.GainA > 62.51 {
		t.Errorf("fair gainA = %v, want 62.5", st.Fair.GainA)
	}
	if st.BelongsTo != "F(S) - Fair Division" {
		t.Errorf("BelongsTo = %q", st.BelongsTo)
	}
	if st.LastSolvedTime == nil {
		t.Error("LastSolvedTime not set")
	}

	events := drainEvents(rec)
	if len(events) != 1 || !strings.HasPrefix(events[0], "Normal Solved") {
		t.Errorf("events = %v, want one Normal Solved event", events)
	}
}

func TestReconcile_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		fd         *v1alpha1.FairDivision
		solver     *division.Solver
		wantReason string
	}{
		{
			name: "sum mismatch",
			fd: newDivision("sum",
				types.Valuations{Divisible: []float64{90}},
				types.Valuations{Divisible: []float64{100}}),
			wantReason: ReasonInvalidInput,
		},
		{
			name: "length mismatch",
			fd: newDivision("length",
				types.Valuations{Divisible: []float64{50, 50}},
				types.Valuations{Divisible: []float64{100}}),
			wantReason: ReasonInvalidInput,
		},
		{
			name: "degenerate boundary",
			fd: newDivision("degenerate",
				types.Valuations{Divisible: []float64{100, 0}},
				types.Valuations{Divisible: []float64{0, 100}}),
			wantReason: ReasonDegenerateBoundary,
		},
		{
			name:       "too many items",
			fd:         mergers(),
			solver:     division.NewSolver(division.Options{MaxIndivisibleItems: 3}),
			wantReason: ReasonTooManyItems,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rec := newReconciler(t, tt.solver, tt.fd)

			fd := reconcileAndGet(t, r, tt.fd.Name)

			if fd.Status.Phase != PhaseInvalid {
				t.Errorf("phase = %s, want Invalid", fd.Status.Phase)
			}
			if fd.Status.Reason != tt.wantReason {
				t.Errorf("reason = %s, want %s", fd.Status.Reason, tt.wantReason)
			}
			if fd.Status.Message == "" {
				t.Error("message should describe the error")
			}
			if fd.Status.HasEfficient || fd.Status.Efficient != nil {
				t.Error("invalid problems should carry no divisions")
			}
			events := drainEvents(rec)
			if len(events) != 1 || !strings.HasPrefix(events[0], "Warning "+tt.wantReason) {
				t.Errorf("events = %v, want one Warning %s event", events, tt.wantReason)
			}
		})
	}
}

func TestReconcile_SkipsObservedGeneration(t *testing.T) {
	r, rec := newReconciler(t, nil, mergers())

	first := reconcileAndGet(t, r, "mergers")
	drainEvents(rec)
	second := reconcileAndGet(t, r, "mergers")

	if !first.Status.LastSolvedTime.Equal(second.Status.LastSolvedTime) {
		t.Error("second reconcile should not re-solve an observed generation")
	}
	if events := drainEvents(rec); len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestReconcile_NewGeneration(t *testing.T) {
	fd := newDivision("divorce",
		types.Valuations{Divisible: []float64{50, 20, 15, 10, 5}},
		types.Valuations{Divisible: []float64{40, 30, 10, 10, 10}})
	fd.Generation = 2
	fd.Status = v1alpha1.FairDivisionStatus{Phase: PhaseSolved, ObservedGeneration: 1}
	r, rec := newReconciler(t, nil, fd)

	got := reconcileAndGet(t, r, "divorce")

	if got.Status.ObservedGeneration != 2 {
		t.Errorf("ObservedGeneration = %d, want 2", got.Status.ObservedGeneration)
	}
	if !got.Status.HasFair {
		t.Error("expected a fair division")
	}
	if events := drainEvents(rec); len(events) != 1 {
		t.Errorf("events = %v, want one event for the new generation", events)
	}
}

func TestReconcile_DefaultTotal(t *testing.T) {
	fd := newDivision("scaled",
		types.Valuations{Divisible: []float64{600, 400}},
		types.Valuations{Divisible: []float64{400, 600}})
	r, _ := newReconciler(t, nil, fd)
	r.DefaultTotal = 1000

	got := reconcileAndGet(t, r, "scaled")
	if got.Status.Phase != PhaseSolved {
		t.Fatalf("phase = %s (%s), want Solved", got.Status.Phase, got.Status.Message)
	}
	if !got.Status.HasProportional || got.Status.Proportional.GainA < 500-1e-6 {
		t.Errorf("proportional = %+v, want gains of at least 500", got.Status.Proportional)
	}
}

func TestReconcile_NotFound(t *testing.T) {
	r, rec := newReconciler(t, nil)
	key := k8stypes.NamespacedName{Namespace: "default", Name: "missing"}
	if _, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: key}); err != nil {
		t.Errorf("Reconcile() error = %v, want nil", err)
	}
	if events := drainEvents(rec); len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestReasonFor(t *testing.T) {
	if got := reasonFor(context.Canceled); got != ReasonSolveFailed {
		t.Errorf("reasonFor(unknown) = %s, want %s", got, ReasonSolveFailed)
	}
}

func TestReconcile_WritesOnlyTerminalPhases(t *testing.T) {
	fd := mergers()
	if fd.Status.Phase != "" {
		t.Fatalf("new object phase = %q, want empty", fd.Status.Phase)
	}
	r, _ := newReconciler(t, nil, fd)
	got := reconcileAndGet(t, r, "mergers")
	if !isTerminal(got.Status.Phase) {
		t.Errorf("phase after first reconcile = %q, want a terminal phase", got.Status.Phase)
	}
	for _, phase := range []string{PhaseSolved, PhaseInvalid} {
		if !isTerminal(phase) {
			t.Errorf("isTerminal(%q) = false", phase)
		}
	}
	if isTerminal("") {
		t.Error("an unreconciled object must not count as terminal")
	}
}
