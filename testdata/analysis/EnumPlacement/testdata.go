//go:build strenum

package testdata

import "github.com/sublee/strenum"

func F() {
	e := strenum.Enum[int](nil, strenum.Variant("A", "a")) // want `enum must be declared as package-level variable`
	_ = e

	var local = strenum.Enum[int](nil, strenum.Variant("A", "a")) // want `enum must be declared as package-level variable`
	_ = local
}

var list = []any{strenum.Enum[int](nil, strenum.Variant("A", "a"))} // want `enum must be declared as package-level variable`

var Ok = strenum.Enum[int](nil, strenum.Variant("A", "a")) // ok
