//go:build strenum

package main

import "github.com/sublee/strenum"

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "a"),
	strenum.Variant("Second", "a"),
	strenum.Variant("Third", "b"),
)

func main() {
	panic("strenum will fail")
}
