//go:build strenum

package testdata

import "github.com/sublee/strenum"

var toLower = strenum.ValueToLower() // want `cannot assign ValueToLower to variable`

func asis[T any](v T) T { return v }

var mod = (strenum.Module(
	toLower, // want `option must be inlined, not assigned to variable`

	asis(strenum.ValueToLower()), // want `option must be strenum directive`

	strenum.ValueToLower(),   // ok
	(strenum.ValueToLower()), // ok
))

const constName = "C"

var (
	name = "B"
	flag = true
)

var Options = strenum.Enum[int](mod,
	strenum.Variant("A", "a"),                      // ok
	strenum.Variant(name, "b"),                     // want `name is not constant string`
	strenum.Variant(constName, "c"),                // ok, named constant
	strenum.Variant("D", "d"+constName),            // ok, constant expression
	strenum.Variant("not valid", "e"),              // want `variant name "not valid" is not valid identifier`
	strenum.Variant("_", "f"),                      // want `variant name "_" is not valid identifier`
	strenum.VariantName("G"),                       // ok
	strenum.ConstPrefix("1x"),                      // want `constant prefix "1x" is not valid identifier`
	strenum.ValueReplace("", "x"),                  // want `cannot replace empty string`
	strenum.ValueReplaceRegexp("(", "x"),           // want `invalid regexp pattern: \(`
	strenum.AllowDuplicates(flag),                  // want `flag is not constant bool`
	strenum.ValueTrimPrefix("g"),                   // ok
	strenum.ValueReplaceRegexp(`^(\w)`, "${1}_"),   // ok
)
