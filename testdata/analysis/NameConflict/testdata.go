//go:build strenum

package testdata

import "github.com/sublee/strenum"

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "first"), // want `cannot generate constant TestFirst of enum Test; already declared at .*testdata.go:18:7`
	strenum.Variant("Second", "second"),
)

var Other = strenum.Enum[int](nil, strenum.Variant("A", "a")) // want `cannot generate function ParseOther of enum Other; already declared at .*`

var Left = strenum.Enum[int](nil, strenum.ConstPrefix("Side"), strenum.Variant("A", "a"))

var Right = strenum.Enum[int](nil, strenum.ConstPrefix("Side"), strenum.Variant("A", "b")) // want `cannot generate constant SideA of enum Right; already generated by another enum`

const TestFirst = 1

func ParseOther() {}

// Table names are renamed silently.
var strenum_Test_values = 0
