// Package main generates the Span and Kind accessors of pkg/ast.
//
// Every struct in the package that carries a `Loc Span` field gets a
// Span() method returning it, and a Kind() method returning the type name
// unless the struct already declares its own Kind. A node struct with a
// field named Span or Kind is rejected.
//
// Usage:
//
//	go run ./scripts/genast -out=pkg/ast/ast_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

var (
	pkgFlag = flag.String("pkg", "github.com/leapstack-labs/js2py/pkg/ast", "package to scan")
	outFlag = flag.String("out", "", "output file path (required)")
)

// nodeType describes one struct that needs accessors.
type nodeType struct {
	Name    string
	HasKind bool
}

func main() {
	flag.Parse()

	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, *pkgFlag)
	if err != nil {
		log.Fatalf("failed to load %s: %v", *pkgFlag, err)
	}
	if len(pkgs) != 1 {
		log.Fatalf("expected one package, got %d", len(pkgs))
	}

	nodes, err := collect(pkgs[0], filepath.Base(*outFlag))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Found %d node types", len(nodes))

	code := generate(pkgs[0].Name, nodes)

	formatted, err := format.Source(code)
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = code
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

// collect finds the Loc-carrying structs, ignoring the previously generated file.
func collect(pkg *packages.Package, generated string) ([]nodeType, error) {
	structs := make(map[string]bool)
	kinds := make(map[string]bool)
	var clashes []string

	for i, file := range pkg.Syntax {
		if i < len(pkg.GoFiles) && filepath.Base(pkg.GoFiles[i]) == generated {
			continue
		}
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					st, ok := ts.Type.(*ast.StructType)
					if !ok || !hasLocField(st) {
						continue
					}
					structs[ts.Name.Name] = true
					if field := accessorField(st); field != "" {
						clashes = append(clashes, ts.Name.Name+"."+field)
					}
				}
			case *ast.FuncDecl:
				if d.Recv == nil || d.Name.Name != "Kind" || len(d.Recv.List) == 0 {
					continue
				}
				if name := receiverName(d.Recv.List[0].Type); name != "" {
					kinds[name] = true
				}
			}
		}
	}

	if len(clashes) > 0 {
		sort.Strings(clashes)
		return nil, fmt.Errorf("fields clash with generated accessors: %s", strings.Join(clashes, ", "))
	}

	nodes := make([]nodeType, 0, len(structs))
	for name := range structs {
		nodes = append(nodes, nodeType{Name: name, HasKind: kinds[name]})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes, nil
}

// accessorField returns the name of a field that would collide with a
// generated method, or "".
func accessorField(st *ast.StructType) string {
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			if name.Name == "Span" || name.Name == "Kind" {
				return name.Name
			}
		}
	}
	return ""
}

func hasLocField(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		ident, ok := field.Type.(*ast.Ident)
		if !ok || ident.Name != "Span" {
			continue
		}
		for _, name := range field.Names {
			if name.Name == "Loc" {
				return true
			}
		}
	}
	return false
}

func receiverName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func generate(pkgName string, nodes []nodeType) []byte {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by scripts/genast. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkgName)

	for _, n := range nodes {
		fmt.Fprintf(&buf, "\n// Span implements Node.\nfunc (n *%s) Span() Span { return n.Loc }\n", n.Name)
		if !n.HasKind {
			fmt.Fprintf(&buf, "\n// Kind implements Node.\nfunc (n *%s) Kind() string { return %q }\n", n.Name, n.Name)
		}
	}

	return buf.Bytes()
}
