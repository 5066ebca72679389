// golangcilintstrenum package provides a plugin for golangci-lint to integrate
// the Strenum analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-strenum binary that you can use to lint
// your Go code with the Strenum analyzer. Run it with the strenum build tag
// to check directive files:
//
//	golangci-lint-strenum run --build-tags=strenum
package golangcilintstrenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/strenum/pkg/strenumanalysis"
)

func init() {
	register.Plugin("strenum", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return StrenumLinter{}, nil
}

type StrenumLinter struct{}

func (StrenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{strenumanalysis.Analyzer}, nil
}

// GetLoadMode requires type information because directives are recognized by
// their callee objects.
func (StrenumLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
