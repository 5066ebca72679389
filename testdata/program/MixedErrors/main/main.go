//go:build strenum

package main

import "github.com/sublee/strenum"

var Empty = strenum.Enum[int](nil)

var Shadow = strenum.Enum[int](nil,
	strenum.Variant("A", "a"),
	strenum.Variant("B", "a"),
)

func main() {
	panic("strenum will fail")
}
