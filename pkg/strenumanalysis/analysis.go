// Package strenumanalysis provides an analyzer reporting invalid usages of
// Strenum directives.
package strenumanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/strenum/internal/codefmt"
	strenuminternal "github.com/sublee/strenum/internal/strenum"
)

// Analyzer validates the usage of Strenum in the package. Packages using
// generated identifiers do not type-check under the strenum build tag until
// the code is generated. So it runs despite type errors.
var Analyzer = &analysis.Analyzer{
	Name:             "strenum",
	Doc:              "linter for strenum usage",
	Run:              run,
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	se, err := strenuminternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := se.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Msg,
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
