//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var Test = strenum.Enum[int](nil,
	strenum.AllowDuplicates(true),
	strenum.Variant("First", "a"),
	strenum.Variant("Second", "a"),
	strenum.Variant("Third", "b"),
)

// The enum overrides the option inherited from the module.
var lenient = strenum.Module(strenum.AllowDuplicates(true))

var Strict = strenum.Enum[int](lenient,
	strenum.AllowDuplicates(false),
	strenum.Variant("One", "1"),
	strenum.Variant("Two", "2"),
)

func main() {
	// The first declared member wins.
	t, err := ParseTest("a")
	fmt.Println(t == TestFirst, t, err)

	// Shadowed members still render their strings.
	fmt.Println(TestSecond.Str(), TestSecond.IsValid())
	fmt.Printf("%#v\n", TestSecond)

	t, _ = ParseTest("b")
	fmt.Printf("%#v\n", t)

	s, _ := ParseStrict("2")
	fmt.Printf("%#v\n", s)
}
