// SPDX-License-Identifier: MIT

package match

import "fmt"

// Variant is a named combination of pruning switches. Strength is chosen
// separately, so every variant runs as Mono or Induced.
type Variant struct {
	Name          string
	DegreePruning bool
	Counting      Counting
	Parent        bool
}

// Options returns the option list selecting v.
func (v Variant) Options() []Option {
	return []Option{
		WithDegreePruning(v.DegreePruning),
		WithCounting(v.Counting),
		WithParent(v.Parent),
	}
}

// String returns v.Name.
func (v Variant) String() string { return v.Name }

// DefaultVariant is the variant used by the command line when none is given.
const DefaultVariant = "parent-degree-precount"

var variants = []Variant{
	{Name: "plain"},
	{Name: "degree", DegreePruning: true},
	{Name: "forward", Counting: CountForward},
	{Name: "degree-forward", DegreePruning: true, Counting: CountForward},
	{Name: "backward", Counting: CountBackward},
	{Name: "degree-backward", DegreePruning: true, Counting: CountBackward},
	{Name: "precount", Counting: CountPrecomputed},
	{Name: "degree-precount", DegreePruning: true, Counting: CountPrecomputed},
	{Name: "parent", Parent: true},
	{Name: "parent-degree", DegreePruning: true, Parent: true},
	{Name: "parent-forward", Counting: CountForward, Parent: true},
	{Name: "parent-degree-forward", DegreePruning: true, Counting: CountForward, Parent: true},
	{Name: "parent-backward", Counting: CountBackward, Parent: true},
	{Name: "parent-degree-backward", DegreePruning: true, Counting: CountBackward, Parent: true},
	{Name: "parent-precount", Counting: CountPrecomputed, Parent: true},
	{Name: DefaultVariant, DegreePruning: true, Counting: CountPrecomputed, Parent: true},
}

// Variants returns every registered variant, plain first. The registry
// covers each combination of degree pruning, counting mode and parent
// candidates exactly once.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// LookupVariant returns the variant registered under name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}

	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
