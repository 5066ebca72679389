//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "First"),
)

var count int = "many"

func main() {
	fmt.Println(TestFirst, count)
}
