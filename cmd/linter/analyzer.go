package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `analyzer checks for forbidden function calls

This analyzer reports:
1. Usage of panic() function
2. Calls to any Fatal method (log.Fatal, zap's Logger.Fatal) or os.Exit()
   outside main function of main package

Test files are exempt: t.Fatal is the normal way to stop a test.

The feeder must exit non-zero only from its entrypoint (missing clipboard
binary or invalid configuration); per-iteration failures are tolerated,
so no library code gets to terminate the process.`

var Analyzer = &analysis.Analyzer{
	Name:     "paniclogexit",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		callExpr := node.(*ast.CallExpr)

		// В тестах t.Fatal легален
		if strings.HasSuffix(pass.Fset.Position(node.Pos()).Filename, "_test.go") {
			return
		}

		// Проверка panic()
		if ident, ok := callExpr.Fun.(*ast.Ident); ok && ident.Name == "panic" {
			pass.Reportf(callExpr.Pos(), "panic() should not be used in production code")
			return
		}

		// Проверка Fatal-методов (стандартный log, zap-логгеры) и os.Exit()
		if selExpr, ok := callExpr.Fun.(*ast.SelectorExpr); ok {
			if xIdent, ok := selExpr.X.(*ast.Ident); ok {
				pkgName := xIdent.Name
				funcName := selExpr.Sel.Name

				if strings.HasPrefix(funcName, "Fatal") {
					if !isInMainFunction(pass, node) {
						pass.Reportf(
							callExpr.Pos(),
							"%s.%s() should only be called from main function in main package",
							pkgName,
							funcName,
						)
					}
					return
				}

				if pkgName == "os" && funcName == "Exit" {
					if !isInMainFunction(pass, node) {
						pass.Reportf(callExpr.Pos(), "os.Exit() should only be called from main function in main package")
					}
					return
				}
			}
		}
	})

	return nil, nil
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == "main" && fn.Body != nil {
				if node.Pos() >= fn.Body.Lbrace && node.Pos() <= fn.Body.Rbrace {
					return true
				}
			}
		}
	}
	return false
}
