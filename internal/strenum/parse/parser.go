package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ImportPath is the import path of the directive package.
const ImportPath = "github.com/sublee/strenum"

// BuildTag is the build tag guarding files with directives.
const BuildTag = "strenum"

func IsStrenumImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses an AST of the underlying package to collect strenum enums.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// IsNil reports whether the expression is the untyped nil.
func (p *Parser) IsNil(expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	return ok && id.Name == "nil"
}

// GetDirective returns the name of the strenum directive function if the call
// expression is a strenum directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsStrenumImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a strenum directive with the
// given name. If name is empty, it checks if the call is any strenum
// directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		return true
	}

	return calleeName == name
}

// StrenumGoFiles returns the Go files that have a "//go:build strenum"
// constraint.
func (p *Parser) StrenumGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildStrenum(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildStrenum checks if the file has a build constraint requiring the
// strenum tag. Files excluded by the tag like generated files are not.
func hasGoBuildStrenum(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}

			// Other tags are assumed to be satisfied.
			with := expr.Eval(func(tag string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != BuildTag })
			return with && !without
		}
	}
	return false
}
