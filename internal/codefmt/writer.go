package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes code generated into a package. It collects the imports the
// code needs.
type Writer struct {
	out     io.Writer
	pkg     *packages.Package
	f       Formatter
	imports map[string]Import
	ns      NS
}

// Import is a package imported by generated code.
type Import struct {
	Path string

	// Alias is set if the import name differs from the package name.
	Alias bool
}

// NewWriter creates a [Writer] for code generated into pkg. It has no
// namespace until [Writer.WithNS].
func NewWriter(out io.Writer, pkg *packages.Package) *Writer {
	f := New(pkg)
	f.names = make(map[string]string)
	return &Writer{
		out:     out,
		pkg:     pkg,
		f:       f,
		imports: make(map[string]Import),
	}
}

// WithNS returns a writer sharing the output and imports of w, which allocates
// local names from ns.
func (w *Writer) WithNS(ns NS) *Writer {
	cp := *w
	cp.ns = ns
	return &cp
}

// Name allocates a local name. See [NS.Name].
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Printf writes formatted code. Packages of types formatted by %t are
// imported.
func (w *Writer) Printf(format string, args ...any) {
	w.importTypes(args)
	w.f.Fprintf(w.out, format, args...)
}

// Sprintf is [Writer.Printf] into a string.
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importTypes(args)
	return w.f.Sprintf(format, args...)
}

func (w *Writer) importTypes(args []any) {
	for _, arg := range args {
		typ, ok := arg.(types.Type)
		if !ok {
			continue
		}
		named, ok := types.Unalias(typ).(*types.Named)
		if !ok {
			continue
		}
		if pkg := named.Obj().Pkg(); pkg != nil && pkg.Path() != w.pkg.PkgPath {
			w.Import(pkg.Path(), pkg.Name())
		}
	}
}

// Imports returns the imports keyed by their names in the generated file.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import imports the package at path and returns the name to refer it by.
// name is the preferred name. It is numbered if taken by another import or a
// declaration of the package.
func (w *Writer) Import(path, name string) string {
	own := name
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			own = imp.Name()
			break
		}
	}

	for cand := range Candidates(name) {
		if prev, ok := w.imports[cand]; ok {
			if prev.Path == path {
				return cand
			}
			continue
		}
		if w.pkg.Types.Scope().Lookup(cand) != nil {
			continue
		}
		w.imports[cand] = Import{Path: path, Alias: cand != own}
		w.f.names[path] = cand
		return cand
	}
	panic("unreachable")
}

// RewriteImports rewrites package qualifiers in node to the names allocated by
// w. Identifiers from dot imports are qualified.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	info := w.pkg.TypesInfo
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			x, ok := n.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := info.ObjectOf(x).(*types.PkgName)
			if !ok {
				return true
			}
			c.Replace(w.qualify(x.NamePos, pkgName.Imported(), n.Sel))
			return false

		case *ast.Ident:
			obj := info.ObjectOf(n)
			if obj == nil {
				return false
			}
			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}
			c.Replace(w.qualify(n.NamePos, pkg, n))
			return false
		}
		return true
	}, nil).(T)
}

func (w *Writer) qualify(pos token.Pos, pkg *types.Package, sel *ast.Ident) *ast.SelectorExpr {
	name := w.Import(pkg.Path(), pkg.Name())
	return &ast.SelectorExpr{
		X:   &ast.Ident{NamePos: pos, Name: name},
		Sel: &ast.Ident{NamePos: pos + token.Pos(len(name)+1), Name: sel.Name},
	}
}
