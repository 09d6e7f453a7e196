// Package types provides shared type definitions used across fairdiv packages.
// The API types embed them so the CLI and the controller agree on one shape.
package types

import "gonum.org/v1/gonum/floats"

// Valuations is one participant's additive valuation of every item.
// Divisible[i] and Indivisible[j] are in the participant's own units; both
// participants' valuations sum to the same total.
type Valuations struct {
	// Divisible holds valuations of items that may be split.
	// +optional
	Divisible []float64 `json:"divisible,omitempty"`

	// Indivisible holds valuations of items given wholly to one participant.
	// +optional
	Indivisible []float64 `json:"indivisible,omitempty"`
}

// Sum returns the participant's total valuation.
func (v Valuations) Sum() float64 {
	return floats.Sum(v.Divisible) + floats.Sum(v.Indivisible)
}

// DeepCopyInto copies the receiver into out.
func (v *Valuations) DeepCopyInto(out *Valuations) {
	*out = *v
	if v.Divisible != nil {
		out.Divisible = make([]float64, len(v.Divisible))
		copy(out.Divisible, v.Divisible)
	}
	if v.Indivisible != nil {
		out.Indivisible = make([]float64, len(v.Indivisible))
		copy(out.Indivisible, v.Indivisible)
	}
}

// DeepCopy returns a new deep copy of the receiver.
func (v *Valuations) DeepCopy() *Valuations {
	if v == nil {
		return nil
	}
	out := new(Valuations)
	v.DeepCopyInto(out)
	return out
}
