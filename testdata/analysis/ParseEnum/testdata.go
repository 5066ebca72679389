//go:build strenum

package testdata

import "github.com/sublee/strenum"

var _ = strenum.Enum[int](nil, strenum.Variant("A", "a")) // want `cannot assign enum to blank identifier`

var Empty = strenum.Enum[int](nil) // want `enum Empty has no variants`

var OnlyRules = strenum.Enum[int](nil, strenum.ValueToLower()) // want `enum OnlyRules has no variants`

var Dup = strenum.Enum[int](nil,
	strenum.Variant("A", "a"),
	strenum.Variant("A", "b"), // want `duplicate variant A of enum Dup`
)

var Shadow = strenum.Enum[int](nil, // want `duplicate strings in enum Shadow`
	strenum.Variant("A", "a"),
	strenum.Variant("B", "a"),
)

var DerivedShadow = strenum.Enum[int](nil, // want `duplicate strings in enum DerivedShadow`
	strenum.ValueToLower(),
	strenum.VariantName("Up"),
	strenum.Variant("UP", "up"),
)

var Allowed = strenum.Enum[int](nil, // ok
	strenum.AllowDuplicates(true),
	strenum.Variant("A", "a"),
	strenum.Variant("B", "a"),
)

type Code int16

var Custom = strenum.Enum[Code](nil, strenum.Variant("A", "a")) // ok

var (
	// Grouped is ok.
	Grouped = strenum.Enum[uint64](nil, strenum.VariantName("A"))

	Paren = (strenum.Enum[uintptr](nil, strenum.VariantName("A"))) // ok
)
