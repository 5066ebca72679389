//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "First"),
	strenum.Variant("Second", "Second"),
)

var Level = strenum.Enum[uint8](nil,
	strenum.Variant("Low", "low"),
	strenum.Variant("High", "high"),
)

func main() {
	fmt.Println(Test(5), Test(-1), Test(2))
	fmt.Println(Test(5).IsValid(), Test(-1).IsValid(), TestSecond.IsValid())
	fmt.Printf("%#v\n", Test(7))

	fmt.Println(Level(200), Level(200).IsValid(), LevelHigh.IsValid())
}
