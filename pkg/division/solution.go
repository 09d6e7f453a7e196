package division

import (
	"encoding/json"
	"strings"
)

// Gains is the pair of utilities an allocation gives A and B.
type Gains struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Sum returns A + B.
func (g Gains) Sum() float64 { return g.A + g.B }

// Point returns the gains as a plane point.
func (g Gains) Point() Point { return Point{A: g.A, B: g.B} }

// Allocation describes who receives what. Shares holds A's fraction of
// each divisible item in input order; B receives the remainder.
// Assignment holds 1 for indivisible items given to A and 0 otherwise.
type Allocation struct {
	Shares     []float64 `json:"shares"`
	Assignment []int     `json:"assignment"`
}

// SharesB returns B's fraction of each divisible item.
func (a Allocation) SharesB() []float64 {
	out := make([]float64, len(a.Shares))
	for i, x := range a.Shares {
		out[i] = 1 - x
	}
	return out
}

// SplitCount counts divisible items that are strictly shared.
func (a Allocation) SplitCount() int {
	n := 0
	for _, x := range a.Shares {
		if x > Epsilon && x < 1-Epsilon {
			n++
		}
	}
	return n
}

func (a Allocation) clone() Allocation {
	out := Allocation{
		Shares:     make([]float64, len(a.Shares)),
		Assignment: make([]int, len(a.Assignment)),
	}
	copy(out.Shares, a.Shares)
	copy(out.Assignment, a.Assignment)
	return out
}

// Method identifies how a solution was located.
type Method string

const (
	MethodVertex    Method = "vertex"
	MethodSegment   Method = "segment"
	MethodHeuristic Method = "heuristic"
)

// Witness records where on the attainable region a solution was found.
type Witness struct {
	Method Method `json:"method"`
	// FrontierIndex indexes the Pareto frontier of indivisible outcomes.
	FrontierIndex int   `json:"frontierIndex"`
	FrontierPoint Point `json:"frontierPoint"`
	// VertexIndex is the boundary vertex for vertex solutions, else -1.
	VertexIndex int `json:"vertexIndex"`
	// SegmentIndex is the boundary segment for segment solutions, else -1.
	SegmentIndex int `json:"segmentIndex"`
	// SplitItem is the input index of the divisible item cut by a segment
	// solution, else -1.
	SplitItem     int     `json:"splitItem"`
	SplitFraction float64 `json:"splitFraction"`
	// Intersection is the geometric point located on the shifted boundary.
	Intersection *Point `json:"intersection,omitempty"`
}

// Kind names the division concept a solution was reported for.
type Kind int

const (
	KindNone Kind = iota
	KindEfficient
	KindProportional
	KindEquitable
	KindFair
)

var kindNames = map[Kind]string{
	KindNone:         "None",
	KindEfficient:    "Efficient",
	KindProportional: "Proportional",
	KindEquitable:    "Equitable",
	KindFair:         "Fair",
}

var kindSets = map[Kind]string{
	KindNone:         "U(S)",
	KindEfficient:    "E(S)",
	KindProportional: "P(S)",
	KindEquitable:    "Q(S)",
	KindFair:         "F(S)",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Set returns the Statement 1 set symbol, e.g. "F(S)".
func (k Kind) Set() string {
	if s, ok := kindSets[k]; ok {
		return s
	}
	return "U(S)"
}

// Class is the set of division concepts a gain pair satisfies.
type Class uint8

const (
	ClassEfficient Class = 1 << iota
	ClassProportional
	ClassEquitable

	ClassFair = ClassEfficient | ClassProportional | ClassEquitable
)

// Has reports whether every concept in o is present in c.
func (c Class) Has(o Class) bool { return c&o == o }

// Kind returns the highest priority concept in c:
// Fair, then Equitable, Proportional, Efficient.
func (c Class) Kind() Kind {
	switch {
	case c.Has(ClassFair):
		return KindFair
	case c.Has(ClassEquitable):
		return KindEquitable
	case c.Has(ClassProportional):
		return KindProportional
	case c.Has(ClassEfficient):
		return KindEfficient
	}
	return KindNone
}

// Sets lists the Statement 1 sets c belongs to.
func (c Class) Sets() []string {
	var sets []string
	if c.Has(ClassEfficient) {
		sets = append(sets, KindEfficient.Set())
	}
	if c.Has(ClassProportional) {
		sets = append(sets, KindProportional.Set())
	}
	if c.Has(ClassEquitable) {
		sets = append(sets, KindEquitable.Set())
	}
	if c.Has(ClassFair) {
		sets = append(sets, KindFair.Set())
	}
	return sets
}

// MarshalJSON encodes the class as its list of set symbols.
func (c Class) MarshalJSON() ([]byte, error) {
	sets := c.Sets()
	if sets == nil {
		sets = []string{}
	}
	return json.Marshal(sets)
}

func (c Class) String() string {
	sets := c.Sets()
	if len(sets) == 0 {
		return KindNone.Set()
	}
	return strings.Join(sets, ",")
}

// Solution is one located division.
type Solution struct {
	Kind       Kind       `json:"kind"`
	Class      Class      `json:"class"`
	Allocation Allocation `json:"allocation"`
	Gains      Gains      `json:"gains"`
	Witness    Witness    `json:"witness"`
}

// as returns an independent copy of s reported under kind k.
func (s *Solution) as(k Kind) *Solution {
	out := *s
	out.Kind = k
	out.Allocation = s.Allocation.clone()
	if s.Witness.Intersection != nil {
		pt := *s.Witness.Intersection
		out.Witness.Intersection = &pt
	}
	return &out
}
