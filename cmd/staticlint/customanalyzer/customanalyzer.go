// Package customanalyzer provides custom code analysis.
package customanalyzer

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// OsExitInMainAnalyzer checks for direct os.Exit calls inside the main function of package main.
var OsExitInMainAnalyzer = &analysis.Analyzer{
	Name: "osexitinmain",
	Doc:  "check for os.Exit calls inside the main function of package main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if file.Name.Name != "main" {
			continue
		}
		ast.Inspect(file, func(node ast.Node) bool {
			funcDecl, ok := node.(*ast.FuncDecl)
			if !ok {
				return true
			}
			if funcDecl.Name.Name != "main" || funcDecl.Recv != nil {
				return true
			}
			ast.Inspect(funcDecl.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				ident, ok := selector.X.(*ast.Ident)
				if !ok {
					return true
				}
				if ident.Name == "os" && selector.Sel.Name == "Exit" {
					pass.Reportf(call.Pos(), "os.Exit call inside main function is not allowed")
				}
				return true
			})
			return false
		})
	}
	return nil, nil
}
