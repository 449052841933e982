/*
Command staticlint runs the static checks of the use0mk repository through
multichecker.

It combines:

 1. the analyzers of golang.org/x/tools/go/analysis/passes;
 2. every SA analyzer of honnef.co/go/tools/staticcheck and QF1001 of quickfix;
 3. ST1002 and ST1005 of honnef.co/go/tools/stylecheck;
 4. reqctxlint, which reports http.NewRequest outside tests.

Every call to 0.mk must be cancellable, so outgoing requests are built with
http.NewRequestWithContext. reqctxlint reports the context-free form:

	http.NewRequest called without a context, use http.NewRequestWithContext

Run it from the repository root:

	go run ./cmd/staticlint ./...
*/

package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"golang.org/x/tools/go/analysis/passes/appends"
	"golang.org/x/tools/go/analysis/passes/asmdecl"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/cgocall"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/directive"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/framepointer"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/slog"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stdversion"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/testinggoroutine"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/timeformat"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unsafeptr"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/waitgroup"
)

func main() {
	used := map[string]bool{}
	var analyzers []*analysis.Analyzer

	add := func(a *analysis.Analyzer) {
		if !used[a.Name] {
			analyzers = append(analyzers, a)
			used[a.Name] = true
		}
	}

	analyzers = append(analyzers,
		appends.Analyzer,
		asmdecl.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		cgocall.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		defers.Analyzer,
		directive.Analyzer,
		errorsas.Analyzer,
		framepointer.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		inspect.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shift.Analyzer,
		sigchanyzer.Analyzer,
		slog.Analyzer,
		stdmethods.Analyzer,
		stdversion.Analyzer,
		stringintconv.Analyzer,
		structtag.Analyzer,
		testinggoroutine.Analyzer,
		tests.Analyzer,
		timeformat.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unsafeptr.Analyzer,
		unusedresult.Analyzer,
		waitgroup.Analyzer,
	)

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			add(a.Analyzer)
		}
	}

	for _, name := range []string{"QF1001", "ST1002", "ST1005"} {
		add(byName(name))
	}

	add(Analyzer)

	multichecker.Main(analyzers...)
}

// byName finds a staticcheck, quickfix or stylecheck analyzer by its check name.
func byName(name string) *analysis.Analyzer {
	for _, a := range quickfix.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	for _, a := range stylecheck.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	panic("staticlint: unknown analyzer " + name)
}

// Analyzer reports http.NewRequest calls in non-test files.
var Analyzer = &analysis.Analyzer{
	Name:     "reqctxlint",
	Doc:      "reports http.NewRequest, outgoing requests must carry a context",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		filename := pass.Fset.File(call.Pos()).Name()
		if strings.HasSuffix(filename, "_test.go") || strings.Contains(filename, "go-build") {
			return
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "NewRequest" {
			return
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}

		if pkgObj, ok := pass.TypesInfo.Uses[ident].(*types.PkgName); ok && pkgObj.Imported().Path() == "net/http" {
			pass.Reportf(call.Pos(), "http.NewRequest called without a context, use http.NewRequestWithContext")
		}
	})

	return nil, nil
}
