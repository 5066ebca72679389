//go:build strenum

package main

import (
	"fmt"

	"github.com/sublee/strenum"
)

var (
	greeting = "hello"

	// Phase is a phase of the moon.
	//
	// Deprecated: Use Lunation instead.
	Phase = strenum.Enum[int](nil,
		strenum.Variant("New", "new"),   // no light
		strenum.Variant("Full", "full"), // all light
	) // phases in order
)

// Weekday is a day of the week.
//
//go:generate echo weekday
var Weekday = strenum.Enum[int](nil,
	strenum.Variant("Monday", "Mon"),
	strenum.Variant("Tuesday", "Tue"),
)

// Lunation is not generated.
type Lunation int

func main() {
	fmt.Println(greeting, PhaseNew, PhaseFull, WeekdayTuesday)
}
