//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var color = strenum.Enum[uint8](nil,
	strenum.ValueToLower(),
	strenum.VariantName("Red"),
	strenum.VariantName("Green"),
	strenum.VariantName("Blue"),
)

func main() {
	c, err := parseColor("green")
	fmt.Println(c, c == colorGreen, err)

	_, err = parseColor("Green")
	fmt.Println(err)

	fmt.Println(len(colorValues()), colorBlue)
}
