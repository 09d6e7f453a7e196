package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"fairdiv/pkg/types"
)

// FairDivision is the Schema for the fairdivisions API.
// It describes one two-participant division problem; the controller solves
// it and records every division found in the status.
//
// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Namespaced,shortName=fd
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Belongs To",type=string,JSONPath=`.status.belongsTo`
// +kubebuilder:printcolumn:name="Fair",type=boolean,JSONPath=`.status.hasFair`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type FairDivision struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   FairDivisionSpec   `json:"spec,omitempty"`
	Status FairDivisionStatus `json:"status,omitempty"`
}

// FairDivisionSpec defines the division problem.
type FairDivisionSpec struct {
	// ParticipantA holds the first participant's valuations.
	// +kubebuilder:validation:Required
	ParticipantA types.Valuations `json:"participantA"`

	// ParticipantB holds the second participant's valuations.
	// +kubebuilder:validation:Required
	ParticipantB types.Valuations `json:"participantB"`

	// Total is the value H each participant distributes over the items.
	// Zero means the configured default.
	// +optional
	Total float64 `json:"total,omitempty"`
}

// DivisionOutcome is one division recorded in the status.
type DivisionOutcome struct {
	// DivisibleShares holds participant A's fraction of each divisible item.
	DivisibleShares []float64 `json:"divisibleShares,omitempty"`

	// IndivisibleAssignment holds 1 for items given to A and 0 for B.
	IndivisibleAssignment []int32 `json:"indivisibleAssignment,omitempty"`

	GainA float64 `json:"gainA"`
	GainB float64 `json:"gainB"`

	// Method is vertex, segment or heuristic.
	Method string `json:"method"`

	// SplitItem is the index of the divisible item that is shared, if any.
	// +optional
	SplitItem *int32 `json:"splitItem,omitempty"`

	// SplitFraction is participant A's fraction of SplitItem.
	// +optional
	SplitFraction *float64 `json:"splitFraction,omitempty"`

	// Sets lists the Statement 1 sets this division belongs to.
	Sets []string `json:"sets,omitempty"`
}

// FairDivisionStatus defines the observed state of FairDivision.
type FairDivisionStatus struct {
	// Phase represents the current phase of the division. It is empty until
	// the first reconcile.
	//
	//   - Solved: the solver ran; the Has* flags report what exists
	//   - Invalid: the problem was rejected; Reason names the error class
	//
	// +kubebuilder:validation:Enum=Solved;Invalid
	Phase string `json:"phase,omitempty"`

	// Reason is a CamelCase reason for the current phase.
	Reason string `json:"reason,omitempty"`

	// Message is a human-readable description of the current phase.
	Message string `json:"message,omitempty"`

	// ObservedGeneration is the spec generation the status describes.
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	HasEfficient    bool `json:"hasEfficient,omitempty"`
	HasProportional bool `json:"hasProportional,omitempty"`
	HasEquitable    bool `json:"hasEquitable,omitempty"`
	HasFair         bool `json:"hasFair,omitempty"`

	Efficient    *DivisionOutcome `json:"efficient,omitempty"`
	Proportional *DivisionOutcome `json:"proportional,omitempty"`
	Equitable    *DivisionOutcome `json:"equitable,omitempty"`
	Fair         *DivisionOutcome `json:"fair,omitempty"`

	// Statement1Sets lists the sets E(S), P(S), Q(S), F(S) that are non-empty.
	Statement1Sets []string `json:"statement1Sets,omitempty"`

	// BelongsTo is the highest priority set found, e.g. "F(S) - Fair Division".
	BelongsTo string `json:"belongsTo,omitempty"`

	// FrontierSize is the number of Pareto-optimal indivisible assignments.
	FrontierSize int32 `json:"frontierSize,omitempty"`

	// EnumeratedAssignments is the number of indivisible assignments considered.
	EnumeratedAssignments int32 `json:"enumeratedAssignments,omitempty"`

	// LastSolvedTime is when the solver last ran for this object.
	LastSolvedTime *metav1.Time `json:"lastSolvedTime,omitempty"`
}

// FairDivisionList contains a list of FairDivision objects.
//
// +kubebuilder:object:root=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type FairDivisionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []FairDivision `json:"items"`
}

func init() {
	SchemeBuilder.Register(&FairDivision{}, &FairDivisionList{})
}
