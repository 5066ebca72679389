package strenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
	"github.com/sublee/strenum/internal/strenum/gen"
	"github.com/sublee/strenum/internal/strenum/parse"
)

// Strenum generates enum code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Strenum struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	mods   map[token.Pos]*parse.Module
	tables []*gen.Table
}

// New creates a new [Strenum] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Strenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Strenum{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing code and building enum tables.
// All potential errors are returned by this method. Enums parsed successfully
// are built even if others fail, so that their errors are reported together.
// It must be called before [Generate].
func (se *Strenum) Build() error {
	// Parse modules and enums from the package.
	mods, errs := se.p.ParseModules()
	se.mods = mods

	errs = errors.Join(errs, se.p.Validate(mods))

	enums, err := se.p.ParseEnums(mods)
	errs = errors.Join(errs, err)

	if len(enums) == 0 {
		// No enum definitions found
		return errs
	}

	// Directive variables are erased at code generation. Their names are
	// released to be claimed by the generated types.
	for _, enum := range enums {
		delete(se.ns, enum.Name)
	}

	for _, enum := range enums {
		table, err := gen.Build(enum, se.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		se.tables = append(se.tables, table)
	}

	return errs
}

// Idents returns all package-level identifiers to be generated. It is
// available after [Build] succeeds.
func (se *Strenum) Idents() []string {
	var idents []string
	for _, table := range se.tables {
		idents = append(idents, table.Idents()...)
	}
	return idents
}

// Generate generates enum code for the package. It must be called after
// [Build] succeeds. It returns nil if the package declares no enums.
func (se *Strenum) Generate() []byte {
	if len(se.tables) == 0 {
		return nil
	}
	se.writeEnumCode()
	se.mergeCode()
	return se.frameCode()
}

// writeEnumCode writes declarations of all enums in declaration order.
func (se *Strenum) writeEnumCode() {
	se.w.Printf("// strenum: enums\n\n")

	for _, table := range se.tables {
		local := maps.Clone(se.ns)
		w := se.w.WithNS(local)
		table.WriteDefineCode(w)
	}
}

// mergeCode copies non-strenum code from the source files that tagged with
// "//go:build strenum". It erases strenum directives to remove any references
// to the strenum package.
func (se *Strenum) mergeCode() {
	enums := make(map[token.Pos]struct{})
	for _, table := range se.tables {
		enums[table.Pos()] = struct{}{}
	}

	for _, file := range se.p.StrenumGoFiles() {
		name := filepath.Base(se.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		// Comments inside erased declarations must not leak into the
		// remaining code.
		var erased [][2]token.Pos

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Erase strenum.Module()
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				if call, ok := c.Node().(*ast.CallExpr); ok {
					if se.p.IsDirective(call, "Module") {
						// HACK: printer.Fprint does not validate the name of an
						// Ident node. It can be used to inject arbitrary code
						// including comments at the desired position.
						c.Replace(&ast.Ident{Name: "struct{}{} // strenum module erased"})
						return false
					}
				}
				return true
			}, nil).(ast.Decl)

			// Erase enum directives
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				// Find non-strenum values
				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						// Consts may not have values
						names = append(names, spec.Names[i])
						continue
					}

					if _, ok := enums[ast.Unparen(spec.Values[i]).Pos()]; !ok {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				if len(names) == len(spec.Names) {
					return false
				}

				erased = append(erased, specRange(spec))
				if len(names) == 0 {
					// Input:  var ( a = strenum.Enum[int](...) )
					// Output: var ()
					c.Delete()
				} else {
					// Input:  var ( a, b = strenum.Enum[int](...), 42 )
					// Output: var ( b = 42 )
					c.Replace(&ast.ValueSpec{
						Names:  names,
						Type:   spec.Type,
						Values: values,
					})
				}

				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(se.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(se.w, decl)

			// Write rewritten declaration code
			printer.Fprint(se.buf, se.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: keepComments(file.Comments, erased),
			})
			fmt.Fprintf(se.buf, "\n\n")
		}
	}
}

// specRange returns the range of the value spec including its comments.
func specRange(spec *ast.ValueSpec) [2]token.Pos {
	pos, end := spec.Pos(), spec.End()
	if spec.Doc != nil {
		pos = spec.Doc.Pos()
	}
	if spec.Comment != nil {
		end = spec.Comment.End()
	}
	return [2]token.Pos{pos, end}
}

// keepComments returns comment groups outside of the erased ranges.
func keepComments(comments []*ast.CommentGroup, erased [][2]token.Pos) []*ast.CommentGroup {
	if len(erased) == 0 {
		return comments
	}
	return slices.DeleteFunc(slices.Clone(comments), func(c *ast.CommentGroup) bool {
		for _, r := range erased {
			if r[0] <= c.Pos() && c.End() <= r[1] {
				return true
			}
		}
		return false
	})
}

func (se *Strenum) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	// A build constraint must be followed by a blank line.
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", se.p.Pkg().Name)

	if len(se.w.Imports()) != 0 {
		aliases := slices.Sorted(maps.Keys(se.w.Imports()))

		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range aliases {
			imp := se.w.Imports()[alias]
			if imp.Alias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, se.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
