//go:build strenum

package main

import (
	"errors"
	"fmt"

	"github.com/sublee/strenum"
	"github.com/sublee/strenum/pkg/strenumerrors"
)

var Test = strenum.Enum[int](nil,
	strenum.Variant("First", "First"),
	strenum.Variant("Second", "Second"),
)

func main() {
	// to_str
	fmt.Println(TestFirst.Str(), TestSecond.Str())

	// render
	fmt.Println(TestFirst, TestSecond)
	fmt.Printf("%v %s %#v\n", TestFirst, TestSecond, TestSecond)

	// parse
	t, err := ParseTest("Second")
	fmt.Println(t == TestSecond, err)

	_, err = ParseTest("Unknown")
	fmt.Println(err, errors.Is(err, strenumerrors.ErrNoMatch))

	_, err = ParseTest("first")
	fmt.Println(err)

	var parseErr *strenumerrors.ParseError
	_, err = ParseTest(" First")
	fmt.Printf("%v %q\n", errors.As(err, &parseErr), parseErr.Input)

	// equality
	fmt.Println(TestFirst == TestFirst, TestFirst == TestSecond)

	// round trip
	for _, v := range TestValues() {
		p, err := ParseTest(v.Str())
		fmt.Println(p == v, err == nil, v.String() == v.Str())
	}

	// zero value
	var zero Test
	fmt.Println(zero)
}
