package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
)

// Enum is an enum declared by [strenum.Enum].
type Enum struct {
	// Name is the name of the variable holding the directive. It becomes the
	// name of the generated type.
	Name string

	// Base is the underlying type of the generated type.
	Base types.Type

	Module *Module
	Config Config

	// Doc and Comment are the comments attached to the variable. Doc is
	// copied onto the generated type.
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup

	pkg  *packages.Package
	pos  token.Pos
	call *ast.CallExpr
}

// Pkg returns the package where the enum is declared. Enum implements
// [codefmt.Pkger] by this method.
func (e Enum) Pkg() *packages.Package { return e.pkg }

// Pos returns the position of the directive call. Enum implements
// [codefmt.Poser] by this method.
func (e Enum) Pos() token.Pos { return e.pos }

// Call returns the directive call expression.
func (e Enum) Call() *ast.CallExpr { return e.call }

// Exported reports whether the generated type is exported.
func (e Enum) Exported() bool { return token.IsExported(e.Name) }

// String returns a string representation of the enum. For example,
// "strenum.Enum[int] Color".
func (e Enum) String() string {
	return codefmt.Sprintf(e, "strenum.Enum[%t] %s", e.Base, e.Name)
}

// ParseEnums parses all [Enum]s from the AST in declaration order. Enums
// failed to parse are left out of the result and their errors are joined.
func (p *Parser) ParseEnums(mods map[token.Pos]*Module) ([]Enum, error) {
	var errs error
	var enums []Enum

	for _, file := range p.StrenumGoFiles() {
		for decl := range p.FindEnums(file) {
			enum, err := p.parseEnum(decl, mods)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			enums = append(enums, enum)
		}
	}

	return enums, errs
}

// EnumDecl is a package-level variable declaration holding an [strenum.Enum]
// call.
type EnumDecl struct {
	ID      *ast.Ident
	Call    *ast.CallExpr
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

// FindEnums iterates package-level [strenum.Enum] declarations in the file.
func (p *Parser) FindEnums(file *ast.File) iter.Seq[EnumDecl] {
	return func(yield func(EnumDecl) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val := spec.(*ast.ValueSpec)
				if len(val.Names) != len(val.Values) {
					// Enum returns exactly one value. The assignment like
					// this is invalid:
					// var a, b = strenum.Enum[int](nil)
					continue
				}

				// The doc comment of an ungrouped declaration belongs to the
				// GenDecl:
				//
				//	// Color is ...
				//	var Color = strenum.Enum[int](nil, ...)
				doc := val.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}

				for i, id := range val.Names {
					call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "Enum") {
						continue
					}

					if !yield(EnumDecl{ID: id, Call: call, Doc: doc, Comment: val.Comment}) {
						return
					}
				}
			}
		}
	}
}

// parseEnum parses an [Enum] from the given declaration.
func (p *Parser) parseEnum(decl EnumDecl, mods map[token.Pos]*Module) (Enum, error) {
	id, call := decl.ID, decl.Call

	if id.Name == "_" {
		return Enum{}, codefmt.Errorf(p, id, "cannot assign enum to blank identifier")
	}

	base, err := p.parseBase(id)
	if err != nil {
		return Enum{}, err
	}

	if len(call.Args) == 0 {
		return Enum{}, codefmt.Errorf(p, call, "need module parameter") // unreachable
	}

	var errs error
	mod, err := p.ParseModuleArg(call.Args[0], mods)
	if err != nil {
		// Keep parsing options to collect as many errors as possible.
		mod = NilModule()
		errs = errors.Join(errs, err)
	}

	cfg := mod.Config.Fork()
	errs = errors.Join(errs, p.ParseConfig(&cfg, call.Args[1:], true))

	if errs == nil && len(cfg.Variants) == 0 {
		errs = codefmt.Errorf(p, call, "enum %s has no variants", id.Name)
	}

	if errs != nil {
		return Enum{}, errs
	}

	return Enum{
		Name:    id.Name,
		Base:    base,
		Module:  mod,
		Config:  cfg,
		Doc:     decl.Doc,
		Comment: decl.Comment,
		pkg:     p.Pkg(),
		pos:     call.Pos(),
		call:    call,
	}, nil
}

// parseBase finds the Base type argument from the type of the enum variable,
// which is an instance of enum[Base].
func (p *Parser) parseBase(id *ast.Ident) (types.Type, error) {
	obj := p.Pkg().TypesInfo.ObjectOf(id)
	if obj == nil {
		return nil, codefmt.Errorf(p, id, "cannot resolve enum %s", id.Name)
	}

	named, ok := types.Unalias(obj.Type()).(*types.Named)
	if !ok || named.TypeArgs().Len() != 1 {
		return nil, codefmt.Errorf(p, id, "cannot infer base type of enum %s", id.Name)
	}

	base := named.TypeArgs().At(0)
	basic, ok := base.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, codefmt.Errorf(p, id, "base type of enum %s must be integer; got %t", id.Name, base) // unreachable
	}
	return base, nil
}
