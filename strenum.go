// Package strenum provides directives for string-mapped enum code generation.
//
// Strenum eliminates the boilerplate around enums that carry a string
// constant per member. Declare the members and their strings once, and the
// generator produces the enum type, its constants, and the conversions
// between members and strings.
//
// To start with Strenum, add a build constraint to files containing Strenum
// directives:
//
//	//go:build strenum
//
// An enum is declared by assigning [Enum] to a package-level variable. The
// variable name becomes the type name, and each [Variant] pairs a member name
// with its string:
//
//	// source:
//	var Test = strenum.Enum[int](nil,
//		strenum.Variant("First", "First"),
//		strenum.Variant("Second", "Second"),
//	)
//
//	// generated: (simplified)
//	type Test int
//
//	const (
//		TestFirst Test = iota
//		TestSecond
//	)
//
//	func (x Test) Str() string    { ... } // "First", "Second"
//	func (x Test) String() string { return x.Str() }
//	func ParseTest(s string) (Test, error) { ... }
//
// After declaring enums, run the strenum command. It will generate
// strenum_gen.go for your package:
//
//	go run github.com/sublee/strenum/cmd/strenum
//
// # Parsing
//
// The generated parse function scans the declared strings in declaration
// order and returns the first member whose string equals the input exactly.
// There is no case folding or trimming. When nothing matches, it returns a
// *[strenumerrors.ParseError] that holds the rejected input verbatim:
//
//	t, err := ParseTest("Unknown")
//	// err.Error() == `cannot parse "Unknown" as Test`
//	// errors.Is(err, strenumerrors.ErrNoMatch) == true
//
// # Duplicate strings
//
// Two members sharing a string would make the later one unreachable by
// parsing. Strenum reports such enums at generation time:
//
//	main.go:10:12: duplicate strings in enum Test
//		ok:   First  -> "a"
//		FAIL: Second -> "a" // shadowed by First
//
// Use [AllowDuplicates] to accept them. Parsing then resolves to the member
// declared first.
//
// # Derived strings
//
// [VariantName] declares a member whose string is derived from its name by
// value rules such as [ValueToSnake] and [ValueToLower]. The rules are applied
// in the order they are registered:
//
//	// source:
//	var Status = strenum.Enum[uint8](nil,
//		strenum.ValueToSnake(),
//		strenum.ValueToLower(),
//		strenum.VariantName("Todo"),       // "todo"
//		strenum.VariantName("InProgress"), // "in_progress"
//		strenum.Variant("Done", "finished"),
//	)
//
// # Modules
//
// [Module] holds default options shared by enums, typically value rules:
//
//	var (
//		snake  = strenum.Module(strenum.ValueToSnake(), strenum.ValueToLower())
//		Status = strenum.Enum[uint8](snake, strenum.VariantName("InProgress"))
//		Stage  = strenum.Enum[uint8](snake, strenum.VariantName("PreRelease"))
//	)
//
// Modules are erased at code generation. So they must be unexported and used
// only as directive arguments.
package strenum

// module provides default options for underlying enums. This is unexported so
// there is no way to create a module other than [Module].
type module *struct{}

// integer is the set of underlying types an enum can have.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// enum is the placeholder type of an [Enum] directive. The variable holding it
// is replaced with the generated type.
type enum[Base integer] struct{ _ [0]Base }

type (
	canUseFor interface{ canUseFor() }
	yes       interface{ canUseFor }
	no        interface{ canUseFor }

	// option for [Module]
	moduleOption interface{ moduleOption() yes }

	// option for [Enum]
	enumOption interface{ enumOption() yes }
)

// Option configures how enums are generated. They are categorized by their
// prefix:
//
//   - Variant: Declares a member of the enum.
//   - Value: Appends or resets rules deriving strings from member names.
//
// Not every option can be applied to every directive. The type parameters of
// [Option] indicate which directives accept the option. For example,
// Option[no, yes] can be applied to [Enum] but not to [Module].
type Option[Module, Enum canUseFor] interface {
	moduleOption() Module
	enumOption() Enum
}

// Module provides default options for the enums declared with it. Pass a
// module as the first argument of [Enum]:
//
//	var mod = strenum.Module(strenum.ValueToLower())
//	var Color = strenum.Enum[int](mod, strenum.VariantName("Red"))
//
// Options given to [Enum] are applied after the module options.
func Module(opts ...moduleOption) module {
	panic("strenum: not generated")
}

// Enum directive generates an enum type with a string constant for each
// member. Base is the underlying integer type of the generated type:
//
//	// source:
//	var Color = strenum.Enum[uint8](nil,
//		strenum.Variant("Red", "red"),
//		strenum.Variant("Green", "green"),
//	)
//
// The variable that holds the directive is rewritten to the type when
// Strenum generates code. Doc comments on the variable are kept on the type:
//
//	// generated: (simplified)
//	type Color uint8
//
//	const (
//		ColorRed Color = iota
//		ColorGreen
//	)
//
//	func (x Color) Str() string
//	func (x Color) String() string
//	func (x Color) GoString() string
//	func (x Color) IsValid() bool
//	func ParseColor(s string) (Color, error)
//	func ColorValues() []Color
//
// The members are numbered from zero in declaration order, so the zero value
// of the type is the first member.
func Enum[Base integer](mod module, opts ...enumOption) enum[Base] {
	panic("strenum: not generated")
}

// Variant declares a member with its string. Both must be constant strings.
// The name must be a valid Go identifier. It is prefixed by [ConstPrefix] to
// form the constant name.
//
// The string is used as is. Value rules do not apply to it.
func Variant(name, value string) Option[no, yes] {
	panic("strenum: not generated")
}

// VariantName declares a member whose string is derived from the name by the
// value rules in effect. Without any rule, the string equals the name.
func VariantName(name string) Option[no, yes] {
	panic("strenum: not generated")
}

// ConstPrefix sets the prefix of the generated constant names. The default
// prefix is the type name. An empty prefix leaves member names as they are.
//
// When this option is specified multiple times, the last one takes effect.
func ConstPrefix(prefix string) Option[no, yes] {
	panic("strenum: not generated")
}

// AllowDuplicates accepts members sharing the same string. Parsing such a
// string resolves to the member declared first.
//
// When this option is specified multiple times, the last one takes effect.
func AllowDuplicates(enable bool) Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueToLower registers a value rule that converts to lowercase.
func ValueToLower() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueToUpper registers a value rule that converts to uppercase.
func ValueToUpper() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueToTitle registers a value rule that capitalizes each word.
func ValueToTitle() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueToSnake registers a value rule that joins words with underscores. It
// does not change letter case: "InProgress" becomes "In_Progress". Combine it
// with [ValueToLower] for conventional snake case.
func ValueToSnake() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueToKebab registers a value rule that joins words with hyphens. Like
// [ValueToSnake], it does not change letter case.
func ValueToKebab() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueTrimPrefix registers a value rule that trims a prefix.
func ValueTrimPrefix(prefix string) Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueTrimSuffix registers a value rule that trims a suffix.
func ValueTrimSuffix(suffix string) Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueReplace registers a value rule that replaces old with new.
func ValueReplace(old, new string) Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueReplaceRegexp registers a value rule that replaces matches of the
// regular expression with repl. repl follows [regexp.Regexp.ReplaceAllString].
func ValueReplaceRegexp(regexp, repl string) Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueTrimCommonPrefix registers a value rule that trims the longest common
// prefix of the derived strings.
func ValueTrimCommonPrefix() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueTrimCommonWordPrefix registers a value rule that trims the longest
// common prefix of the derived strings based on word boundaries:
// "StatusStart" and "StatusStop" lose "Status" but not "St".
func ValueTrimCommonWordPrefix() Option[yes, yes] {
	panic("strenum: not generated")
}

// ValueReset clears all the value rules registered so far, including the ones
// inherited from the module.
func ValueReset() Option[yes, yes] {
	panic("strenum: not generated")
}
