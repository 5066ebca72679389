//go:build strenum

package testdata

import (
	"fmt"

	"github.com/sublee/strenum"
)

var mod = strenum.Module() // ok, very valid

var Mod = strenum.Module() // want `cannot export module "Mod"; removed at code generation`

var _ = strenum.Module() // ok, blank identifier is harmless

var mod2 = mod // want `cannot use module "mod" outside strenum directives; removed at code generation`

var mod3 = &mod // want `cannot use module "mod" outside strenum directives; removed at code generation`

var _ = mod // ok, blank identifier is harmless

var Color = strenum.Enum[int](mod, strenum.VariantName("Red")) // ok, used by directive

func F1() {
	fmt.Println(mod)  // want `cannot use module "mod" outside strenum directives; removed at code generation`
	fmt.Println(mod2) // ok, mod2 is already invalid
	fmt.Println(mod3) // ok, mod3 is already invalid
}

var (
	modSlice = []any{mod} // want `cannot use module "mod" outside strenum directives; removed at code generation`
	_        = modSlice
)

var (
	modMap = map[int]any{0: mod} // want `cannot use module "mod" outside strenum directives; removed at code generation`
	_      = modMap
)

func F2() any {
	return mod // want `cannot use module "mod" outside strenum directives; removed at code generation`
}

func F3() {
	Mod := mod // want `cannot use module "mod" outside strenum directives; removed at code generation`
	_ = Mod
}

func F4() {
	mod := strenum.Module() // ok, will be removed
	_ = mod                 // ok, will be removed also
}
