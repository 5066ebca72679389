package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"

	"github.com/sublee/strenum/internal/codefmt"
)

// Module holds default options shared by enums. Every enum declared with a
// module inherits its configuration.
type Module struct {
	// Name is the module name user gave when declaring the module as a
	// variable. It can be empty if the module is declared inline.
	Name string

	// Config holds all options given to the module.
	Config Config
}

// ParseModules finds and parses all strenum.Module calls in the parsed files.
// The modules are keyed by the position of their variable identifiers.
func (p *Parser) ParseModules() (map[token.Pos]*Module, error) {
	var errs error
	mods := make(map[token.Pos]*Module)

	for _, file := range p.StrenumGoFiles() {
		for id, call := range p.FindModules(file) {
			name := id.Name
			if name == "_" {
				name = ""
			}

			mod, err := p.ParseModule(call, name)
			mods[id.Pos()] = mod
			errs = errors.Join(errs, err)
		}
	}

	return mods, errs
}

// FindModules collects and iterates package-level [strenum.Module] calls. It
// does not collect inline calls.
func (p *Parser) FindModules(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val := spec.(*ast.ValueSpec)
				for i, id := range val.Names {
					if len(val.Values) <= i {
						break
					}

					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Module") {
						continue
					}

					if !yield(id, call) {
						return
					}
				}
			}
		}
	}
}

// ParseModule parses a [strenum.Module] call expression and returns a new
// module.
func (p *Parser) ParseModule(call *ast.CallExpr, name string) (*Module, error) {
	var cfg Config
	err := p.ParseConfig(&cfg, call.Args, false)
	return &Module{Name: name, Config: cfg}, err
}

// ParseModuleArg parses the module argument of [strenum.Enum].
func (p *Parser) ParseModuleArg(expr ast.Expr, mods map[token.Pos]*Module) (*Module, error) {
	expr = ast.Unparen(expr)

	// Inline Module Declaration
	// =========================
	//
	//	var Color = strenum.Enum[int](strenum.Module(...), ...)
	//	                              ^^^^^^^^^^^^^^^^^^^
	// This type of module is anonymous and cannot be shared. It is equivalent
	// to passing its options to the enum directly.
	if call, ok := expr.(*ast.CallExpr); ok && p.IsDirective(call, "Module") {
		return p.ParseModule(call, "")
	}

	// Nil Module
	// ==========
	//
	//	var Color = strenum.Enum[int](nil, ...)
	//	                              ^^^
	if p.IsNil(expr) {
		return NilModule(), nil
	}

	// Package-level Module
	// ====================
	//
	//	var (
	//		mod   = strenum.Module(...)
	//		^^^
	//		Color = strenum.Enum[int](mod, ...)
	//		Shape = strenum.Enum[int](mod, ...)
	//	)
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, codefmt.Errorf(p, expr, "module must be strenum.Module() or package-level variable")
	}

	obj := p.Pkg().TypesInfo.ObjectOf(id)
	if obj == nil {
		return nil, codefmt.Errorf(p, expr, "cannot resolve module %q", id.Name)
	}

	mod, ok := mods[obj.Pos()]
	if !ok {
		return nil, codefmt.Errorf(p, expr, "cannot find %q module declared by strenum.Module", id.Name)
	}
	return mod, nil
}

// NilModule returns a new empty module with no configuration.
func NilModule() *Module {
	return &Module{}
}
