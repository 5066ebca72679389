package gen

import (
	"strconv"
	"strings"

	"github.com/sublee/strenum/internal/codefmt"
)

// ErrorsImportPath is the import path of the runtime error package referred by
// generated parse functions.
const ErrorsImportPath = "github.com/sublee/strenum/pkg/strenumerrors"

// WriteDefineCode writes the declarations of the enum: its type, constants,
// lookup tables, methods, and functions. w should have a namespace local to
// this enum to allocate local variables.
func (t *Table) WriteDefineCode(w *codefmt.Writer) {
	t.writeType(w)
	t.writeConsts(w)
	t.writeTables(w)
	t.writeMethods(w)
	t.writeParseFunc(w)
	t.writeValuesFunc(w)
}

// writeType writes the type declaration. The comments of the directive
// variable are moved to the type.
func (t *Table) writeType(w *codefmt.Writer) {
	if doc := t.Enum.Doc; doc != nil {
		for _, c := range doc.List {
			w.Printf("%s\n", c.Text)
		}
	}

	w.Printf("type %s %t", t.Type, t.Enum.Base)
	if comment := t.Enum.Comment; comment != nil {
		for _, c := range comment.List {
			w.Printf(" %s", c.Text)
		}
	}
	w.Printf("\n\n")
}

func (t *Table) writeConsts(w *codefmt.Writer) {
	w.Printf("const (\n")
	for i, m := range t.Members {
		if i == 0 {
			w.Printf("%s %s = iota\n", m.Const, t.Type)
		} else {
			w.Printf("%s\n", m.Const)
		}
	}
	w.Printf(")\n\n")
}

// writeTables writes arrays indexed by the constants. One holds the strings
// and the other holds the constant names.
func (t *Table) writeTables(w *codefmt.Writer) {
	w.Printf("var %s = [...]string{\n", t.ValuesVar)
	for _, m := range t.Members {
		w.Printf("%s: %s,\n", m.Const, quote(m.Value))
	}
	w.Printf("}\n\n")

	w.Printf("var %s = [...]string{\n", t.NamesVar)
	for _, m := range t.Members {
		w.Printf("%s: %s,\n", m.Const, quote(m.Const))
	}
	w.Printf("}\n\n")
}

func (t *Table) writeMethods(w *codefmt.Writer) {
	varX := w.Name("x")

	w.Printf("// Str returns the string of %s. For an undeclared value, it returns the\n", t.Type)
	w.Printf("// value in %s(N) form.\n", t.Type)
	w.Printf("func (%s %s) Str() string {\n", varX, t.Type)
	w.Printf("if %s.IsValid() {\n", varX)
	w.Printf("return %s[%s]\n", t.ValuesVar, varX)
	w.Printf("}\n")
	w.Printf("return %s\n", t.undeclaredExpr(w, varX))
	w.Printf("}\n\n")

	w.Printf("// String implements [fmt.Stringer]. It is identical to [%s.Str].\n", t.Type)
	w.Printf("func (%s %s) String() string {\n", varX, t.Type)
	w.Printf("return %s.Str()\n", varX)
	w.Printf("}\n\n")

	w.Printf("// GoString implements [fmt.GoStringer]. It returns the constant name of\n")
	w.Printf("// %s.\n", t.Type)
	w.Printf("func (%s %s) GoString() string {\n", varX, t.Type)
	w.Printf("if %s.IsValid() {\n", varX)
	w.Printf("return %s[%s]\n", t.NamesVar, varX)
	w.Printf("}\n")
	w.Printf("return %s\n", t.undeclaredExpr(w, varX))
	w.Printf("}\n\n")

	w.Printf("// IsValid reports whether %s is a declared %s.\n", varX, t.Type)
	w.Printf("func (%s %s) IsValid() bool {\n", varX, t.Type)
	w.Printf("return uint64(%s) < uint64(len(%s))\n", varX, t.ValuesVar)
	w.Printf("}\n\n")
}

// undeclaredExpr returns an expression that renders an undeclared value as
// T(N).
func (t *Table) undeclaredExpr(w *codefmt.Writer, varX string) string {
	varStrconv := w.Import("strconv", "strconv")
	if t.Signed() {
		return w.Sprintf("%s + %s.FormatInt(int64(%s), 10) + \")\"", quote(t.Type+"("), varStrconv, varX)
	}
	return w.Sprintf("%s + %s.FormatUint(uint64(%s), 10) + \")\"", quote(t.Type+"("), varStrconv, varX)
}

func (t *Table) writeParseFunc(w *codefmt.Writer) {
	varS := w.Name("s")
	varI := w.Name("i")
	varV := w.Name("v")
	varStrenumerrors := w.Import(ErrorsImportPath, "strenumerrors")

	w.Printf("// %s returns the first %s whose string equals %s.\n", t.ParseFunc, t.Type, varS)
	w.Printf("// If nothing matches, it returns *%s.ParseError.\n", varStrenumerrors)
	w.Printf("func %s(%s string) (%s, error) {\n", t.ParseFunc, varS, t.Type)
	w.Printf("for %s, %s := range %s {\n", varI, varV, t.ValuesVar)
	w.Printf("if %s == %s {\n", varV, varS)
	w.Printf("return %s(%s), nil\n", t.Type, varI)
	w.Printf("}\n")
	w.Printf("}\n")
	w.Printf("return 0, &%s.ParseError{Enum: %s, Input: %s}\n", varStrenumerrors, quote(t.Type), varS)
	w.Printf("}\n\n")
}

func (t *Table) writeValuesFunc(w *codefmt.Writer) {
	w.Printf("// %s returns all declared %s values in declaration order.\n", t.ValuesFunc, t.Type)
	w.Printf("func %s() []%s {\n", t.ValuesFunc, t.Type)
	w.Printf("return []%s{\n", t.Type)
	for _, m := range t.Members {
		w.Printf("%s,\n", m.Const)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")
}

// quote returns a Go string literal of s. Backquotes are preferred for
// readability when s contains double quotes or backslashes.
func quote(s string) string {
	if strings.ContainsAny(s, "\"\\") && strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
