//go:build strenum

package main

import (
	"fmt"
	"strings"

	"github.com/sublee/strenum"
)

var snake = strenum.Module(strenum.ValueToSnake(), strenum.ValueToLower())

var Status = strenum.Enum[uint8](snake,
	strenum.VariantName("Todo"),
	strenum.VariantName("InProgress"),
	strenum.Variant("Done", "finished"),
)

var Method = strenum.Enum[int8](nil,
	strenum.ConstPrefix(""),
	strenum.ValueTrimCommonWordPrefix(),
	strenum.ValueToUpper(),
	strenum.VariantName("MethodGet"),
	strenum.VariantName("MethodPost"),
)

var Access = strenum.Enum[uint](snake,
	strenum.ValueReset(),
	strenum.ValueTrimPrefix("Access"),
	strenum.ValueToKebab(),
	strenum.ValueToLower(),
	strenum.VariantName("AccessReadOnly"),
	strenum.VariantName("AccessReadWrite"),
)

var Color = strenum.Enum[int16](nil,
	strenum.ConstPrefix("Color_"),
	strenum.ValueReplaceRegexp(`([a-z])([A-Z])`, "$1 $2"),
	strenum.ValueToLower(),
	strenum.ValueToTitle(),
	strenum.ValueReplace(" ", "/"),
	strenum.VariantName("LightRed"),
	strenum.VariantName("DarkGreen"),
)

// Label is merged into the generated code.
func (s Status) Label() string {
	return strings.ToUpper(s.Str())
}

func main() {
	for _, s := range StatusValues() {
		fmt.Println(s, s.Label())
	}

	for _, m := range MethodValues() {
		fmt.Printf("%s %#v\n", m, m)
	}

	for _, a := range AccessValues() {
		fmt.Println(a)
	}

	for _, c := range ColorValues() {
		fmt.Printf("%s %#v\n", c, c)
	}

	s, err := ParseStatus("in_progress")
	fmt.Println(s == StatusInProgress, err)
}
