//go:build strenum

package main

import "github.com/sublee/strenum"

var Mod = strenum.Module(strenum.ValueToLower())

var lower = strenum.ValueToLower()

var Test = strenum.Enum[int](Mod,
	lower,
	strenum.VariantName("First"),
)

func main() {
	panic("strenum will fail")
}
