// Package exprtext recovers the source text of call arguments from the Go
// source files of a running program.
package exprtext

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
)

type sourceFile struct {
	fset      *token.FileSet
	inspector *inspector.Inspector
	err       error
}

var (
	cacheMu sync.Mutex
	cache   map[string]*sourceFile
)

// Condition returns the source text of the first argument of the call to
// one of funcNames found on the line of the caller selected by skip (0 is
// the function calling Condition). When the source is not available it
// returns the caller location as "<file>:<line>".
func Condition(skip int, funcNames ...string) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "<unknown>"
	}

	if text, ok := Lookup(file, line, funcNames...); ok {
		return text
	}

	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Lookup finds the innermost call to one of funcNames spanning line in the
// file at path and returns the printed form of its first argument. It fails
// when several calls on that line are equally close.
func Lookup(path string, line int, funcNames ...string) (string, bool) {
	src := load(path)
	if src.err != nil {
		return "", false
	}

	var match *ast.CallExpr
	var matchSpan int
	ambiguous := false
	src.inspector.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) == 0 || !slices.Contains(funcNames, calleeName(call.Fun)) {
			return
		}

		start := src.fset.Position(call.Pos()).Line
		end := src.fset.Position(call.End()).Line
		if line < start || line > end {
			return
		}

		// Prefer the tightest call when assertions are nested or span lines.
		// Calls sharing the tightest span cannot be told apart by line.
		switch span := end - start; {
		case match == nil || span < matchSpan:
			match = call
			matchSpan = span
			ambiguous = false
		case span == matchSpan:
			ambiguous = true
		}
	})

	if match == nil || ambiguous {
		return "", false
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, src.fset, match.Args[0]); err != nil {
		return "", false
	}

	return buf.String(), true
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	default:
		return ""
	}
}

func load(path string) *sourceFile {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if src, ok := cache[path]; ok {
		return src
	}

	if cache == nil {
		cache = make(map[string]*sourceFile)
	}

	src := &sourceFile{fset: token.NewFileSet()}
	file, err := parser.ParseFile(src.fset, path, nil, parser.SkipObjectResolution)
	if err != nil {
		src.err = err
	} else {
		src.inspector = inspector.New([]*ast.File{file})
	}

	cache[path] = src
	return src
}
