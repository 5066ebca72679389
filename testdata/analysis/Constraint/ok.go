//go:build strenum

package testdata

import "github.com/sublee/strenum" // ok

var Color = strenum.Enum[int](nil, strenum.Variant("Red", "red"))
