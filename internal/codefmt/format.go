// Package codefmt renders types, expressions and positions of a loaded
// package for diagnostics and generated code.
package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type (
	// Pkger is implemented by values bound to a loaded package.
	Pkger interface{ Pkg() *packages.Package }

	// Poser is implemented by values with a source position, AST nodes
	// included.
	Poser interface{ Pos() token.Pos }

	Ender interface{ End() token.Pos }
)

// Formatter formats printf operands of a package. Besides the fmt verbs, it
// supports:
//
//	%t: types.Type, qualified relative to the package
//	%c: ast.Expr, as Go source
//	%b: token.Pos or Poser, as file:line:column
type Formatter struct {
	pkgPath string
	fset    *token.FileSet

	// names maps import paths to the names generated code refers them by.
	names map[string]string
}

// New creates a [Formatter] for the package. A nil package yields a formatter
// that qualifies every named type by its package name.
func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkgPath: pkg.PkgPath, fset: pkg.Fset}
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	return New(pkger.Pkg())
}

func (f Formatter) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == f.pkgPath {
		return ""
	}
	if name, ok := f.names[pkg.Path()]; ok {
		return name
	}
	return pkg.Name()
}

// Type returns typ as it is written in the package.
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualifier)
}

// Expr returns expr as Go source.
func (f Formatter) Expr(expr ast.Expr) string {
	fset := f.fset
	if fset == nil {
		fset = token.NewFileSet()
	}
	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // go/printer supports every ast.Expr
	}
	return b.String()
}

// Position returns pos in file:line:column form. The file is relative to the
// working directory if possible.
func (f Formatter) Position(pos token.Pos) string {
	if f.fset == nil {
		return position(token.Position{})
	}
	return position(f.fset.Position(pos))
}

var wd, _ = os.Getwd()

func position(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}
	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// operand adapts a printf argument to the verbs of [Formatter].
type operand struct {
	x any
	f Formatter
}

func (op operand) Format(s fmt.State, verb rune) {
	switch verb {
	case 't':
		if typ, ok := op.x.(types.Type); ok {
			_, _ = io.WriteString(s, op.f.Type(typ))
			return
		}
	case 'c':
		if expr, ok := op.x.(ast.Expr); ok {
			_, _ = io.WriteString(s, op.f.Expr(expr))
			return
		}
	case 'b':
		switch x := op.x.(type) {
		case token.Pos:
			_, _ = io.WriteString(s, op.f.Position(x))
			return
		case Poser:
			_, _ = io.WriteString(s, op.f.Position(x.Pos()))
			return
		}
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), op.x)
}

func (f Formatter) operands(args []any) []any {
	ops := make([]any, len(args))
	for i, x := range args {
		switch x.(type) {
		case types.Type, ast.Expr, token.Pos, Poser:
			ops[i] = operand{x, f}
		default:
			ops[i] = x
		}
	}
	return ops
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.operands(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, f.operands(args)...)
}
