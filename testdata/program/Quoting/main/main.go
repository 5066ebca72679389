//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var Text = strenum.Enum[uint8](nil,
	strenum.Variant("Quoted", `say "hi"\n`),
	strenum.Variant("Empty", ""),
	strenum.Variant("Binary", "\xff\x00"),
	strenum.Variant("Tab", "héllo\tworld"),
)

func main() {
	for _, v := range TextValues() {
		p, err := ParseText(v.Str())
		fmt.Printf("%#v %q %v %v\n", v, v.Str(), p == v, err)
	}

	// No normalization
	_, err := ParseText("say \"hi\"\n")
	fmt.Println(err)
	_, err = ParseText("héllo world")
	fmt.Println(err)
	_, err = ParseText("\xff")
	fmt.Println(err)
}
