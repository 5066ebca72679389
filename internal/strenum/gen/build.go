package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/parse"
)

// Member is a member of a generated enum.
type Member struct {
	// Name is the declared member name without the constant prefix.
	Name string

	// Const is the identifier of the generated constant.
	Const string

	// Value is the string of the member, either declared or derived.
	Value string

	// Derived indicates that Value is derived from Name by value rules.
	Derived bool

	// Shadow is the index of the earlier member having the same Value, or -1.
	// Parsing never resolves to a shadowed member.
	Shadow int

	pos token.Pos
}

// Pos returns the position of the option declaring the member.
func (m Member) Pos() token.Pos { return m.pos }

// Table is a built enum ready to generate code.
type Table struct {
	Enum    parse.Enum
	Members []Member

	// Identifiers of generated declarations.
	Type       string
	ValuesVar  string
	NamesVar   string
	ParseFunc  string
	ValuesFunc string

	idents *linkedhashset.Set
}

// Pkg implements [codefmt.Pkger].
func (t *Table) Pkg() *packages.Package { return t.Enum.Pkg() }

// Pos implements [codefmt.Poser].
func (t *Table) Pos() token.Pos { return t.Enum.Pos() }

// Idents returns all package-level identifiers the table generates in
// declaration order.
func (t *Table) Idents() []string {
	idents := make([]string, 0, t.idents.Size())
	for _, v := range t.idents.Values() {
		idents = append(idents, v.(string))
	}
	return idents
}

// Signed reports whether the base type is a signed integer.
func (t *Table) Signed() bool {
	basic := t.Enum.Base.Underlying().(*types.Basic)
	return basic.Info()&types.IsUnsigned == 0
}

// Build builds a [Table] for the enum. It derives member strings, checks
// members against each other and the base type, and claims generated
// identifiers in ns. All errors are collected.
func Build(enum parse.Enum, ns codefmt.NS) (*Table, error) {
	t := &Table{
		Enum:   enum,
		Type:   enum.Name,
		idents: linkedhashset.New(),
	}

	t.Members = buildMembers(enum)

	errs := t.checkNames()
	errs = errors.Join(errs, t.checkSize())
	errs = errors.Join(errs, t.checkValues())
	errs = errors.Join(errs, t.checkMethods())
	if errs != nil {
		return nil, errs
	}

	if err := t.claim(ns); err != nil {
		return nil, err
	}
	return t, nil
}

// buildMembers creates members from the variants of the enum. Derived
// strings are derived all at once because some value rules depend on every
// derived string.
func buildMembers(enum parse.Enum) []Member {
	prefix := enum.Name
	if enum.Config.ConstPrefixEnabled {
		prefix = enum.Config.ConstPrefix
	}

	var derivedNames []string
	for _, v := range enum.Config.Variants {
		if v.Derived {
			derivedNames = append(derivedNames, v.Name)
		}
	}
	derived := enum.Config.Derive(derivedNames)

	members := make([]Member, len(enum.Config.Variants))
	for i, v := range enum.Config.Variants {
		value := v.Value
		if v.Derived {
			value, derived = derived[0], derived[1:]
		}

		members[i] = Member{
			Name:    v.Name,
			Const:   prefix + v.Name,
			Value:   value,
			Derived: v.Derived,
			Shadow:  -1,
			pos:     v.Pos(),
		}
	}
	return members
}

// checkNames reports members declared with the same name.
func (t *Table) checkNames() error {
	var errs error
	names := linkedhashmap.New()
	for _, m := range t.Members {
		if prev, ok := names.Get(m.Name); ok {
			err := codefmt.Errorf(t, m, "duplicate variant %s of enum %s\n\tprevious declaration at %b",
				m.Name, t.Type, prev.(Member).pos)
			errs = errors.Join(errs, err)
			continue
		}
		names.Put(m.Name, m)
	}
	return errs
}

// checkSize reports an enum having more members than the base type can
// number.
func (t *Table) checkSize() error {
	limit, ok := sizeLimit(t.Enum.Base)
	if !ok || uint64(len(t.Members)) <= limit {
		return nil
	}
	return codefmt.Errorf(t, t, "enum %s has %d variants; too many for %t (at most %d)",
		t.Type, len(t.Members), t.Enum.Base, limit)
}

// sizeLimit returns how many members the base type can number from zero.
// Types of 64 bits or more are not limited in practice.
func sizeLimit(base types.Type) (uint64, bool) {
	basic, ok := base.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}

	switch basic.Kind() {
	case types.Int8:
		return 1 << 7, true
	case types.Uint8:
		return 1 << 8, true
	case types.Int16:
		return 1 << 15, true
	case types.Uint16:
		return 1 << 16, true
	case types.Int32:
		return 1 << 31, true
	case types.Uint32:
		return 1 << 32, true
	}
	return 0, false
}

// checkValues marks members shadowed by earlier members with the same string.
// Shadowing is an error unless the enum allows duplicates.
func (t *Table) checkValues() error {
	firsts := linkedhashmap.New()
	shadowed := false
	for i := range t.Members {
		m := &t.Members[i]
		if first, ok := firsts.Get(m.Value); ok {
			m.Shadow = first.(int)
			shadowed = true
			continue
		}
		firsts.Put(m.Value, i)
	}

	if !shadowed || t.Enum.Config.AllowDuplicates {
		return nil
	}

	report := indent(newReport(t.Members).String())
	return codefmt.Errorf(t, t, "duplicate strings in enum %s\n%s", t.Type, report)
}

// checkMethods reports methods declared on the type outside strenum files.
// They would conflict with the generated methods.
func (t *Table) checkMethods() error {
	pkg := t.Pkg()
	if pkg == nil {
		return nil
	}

	var errs error
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			if recvName(fn.Recv.List[0].Type) != t.Type {
				continue
			}

			switch fn.Name.Name {
			case "Str", "String", "GoString", "IsValid":
				err := codefmt.Errorf(t, fn.Name, "method %s.%s conflicts with generated method", t.Type, fn.Name.Name)
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

func recvName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// claim claims all generated identifiers in ns.
func (t *Table) claim(ns codefmt.NS) error {
	var errs error
	claimExact := func(name, what string, pos token.Pos) {
		if ns.Reserve(name) {
			t.idents.Add(name)
			return
		}

		if obj := t.Pkg().Types.Scope().Lookup(name); obj != nil {
			err := codefmt.Errorf(t, codefmt.Pos(pos), "cannot generate %s %s of enum %s; already declared at %b",
				what, name, t.Type, obj.Pos())
			errs = errors.Join(errs, err)
			return
		}

		err := codefmt.Errorf(t, codefmt.Pos(pos), "cannot generate %s %s of enum %s; already generated by another enum",
			what, name, t.Type)
		errs = errors.Join(errs, err)
	}

	claimExact(t.Type, "type", t.Pos())
	for _, m := range t.Members {
		claimExact(m.Const, "constant", m.pos)
	}

	t.ParseFunc = parseFuncName(t.Type)
	t.ValuesFunc = valuesFuncName(t.Type)
	claimExact(t.ParseFunc, "function", t.Pos())
	claimExact(t.ValuesFunc, "function", t.Pos())

	if errs != nil {
		return errs
	}

	t.ValuesVar = ns.Name(fmt.Sprintf("strenum_%s_values", t.Type))
	t.NamesVar = ns.Name(fmt.Sprintf("strenum_%s_names", t.Type))
	t.idents.Add(t.ValuesVar, t.NamesVar)
	return nil
}

// parseFuncName returns "ParseColor" for "Color" and "parseColor" for "color".
func parseFuncName(typeName string) string {
	if token.IsExported(typeName) {
		return "Parse" + typeName
	}
	return "parse" + capitalize(typeName)
}

// valuesFuncName returns "ColorValues" for "Color" and "colorValues" for
// "color".
func valuesFuncName(typeName string) string {
	return typeName + "Values"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// indent prefixes every line with a tab.
func indent(s string) string {
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
}
