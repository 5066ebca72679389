//go:build strenum

package main

import "github.com/sublee/strenum"

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "First"),
)

func main() {
	panic("strenum will fail")
}
