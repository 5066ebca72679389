//go:build strenum

package testdata

import "github.com/sublee/strenum"

var lower = strenum.ValueToLower() // want `cannot assign ValueToLower to variable`

var variant = strenum.Variant("A", "a") // want `cannot assign Variant to variable`

var (
	reset = strenum.ValueReset() // want `cannot assign ValueReset to variable`
	mod   = strenum.Module()     // ok
)

func F() {
	prefix := strenum.ConstPrefix("X") // want `cannot assign ConstPrefix to variable`
	_ = prefix

	var allow = strenum.AllowDuplicates(true) // want `cannot assign AllowDuplicates to variable`
	_ = allow

	local := strenum.Module() // ok, will be removed
	_ = local

	strenum.ValueToUpper() // ok, not assigned
}
