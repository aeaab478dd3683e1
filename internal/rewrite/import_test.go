package rewrite

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/litgo/pkg/lit"
)

func init() {
	lit.Register(lit.Conformance{
		Type:          "example.com/ext.Score2",
		CheckUnsigned: lit.UnsignedRange(100),
	})
}

// fixtureImporter resolves imports against packages type-checked in memory.
type fixtureImporter map[string]*types.Package

func (m fixtureImporter) Import(path string) (*types.Package, error) {
	if p, ok := m[path]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no fixture package %q", path)
}

func typecheckDep(t *testing.T, fset *token.FileSet, path, src string, imp fixtureImporter) *types.Package {
	t.Helper()
	file, err := parser.ParseFile(fset, path+"/fixture.go", src, parser.ParseComments)
	require.NoError(t, err)
	conf := types.Config{Importer: imp, Error: func(error) {}}
	pkg, _ := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NotNil(t, pkg)
	return pkg
}

// A target type can live in a package the annotated file never imports: the
// literal is an argument of a function whose signature names the type. The
// generated file must then import that package too.
func TestProcessFileImportsTargetTypePackage(t *testing.T) {
	fset := token.NewFileSet()
	imp := fixtureImporter{}
	imp["example.com/ext"] = typecheckDep(t, fset, "example.com/ext", `package ext

type Score2 struct{ v uint8 }

func (Score2) FromLiteralUnsigned(v uint64) Score2 { return Score2{uint8(v)} }
`, imp)
	imp["example.com/mid"] = typecheckDep(t, fset, "example.com/mid", `package mid

import "example.com/ext"

func Take(s ext.Score2) {}
`, imp)

	src := `//go:build litgo

package demo

import "example.com/mid"

//litgo:overload
func demo() {
	mid.Take(77)
}
`
	file, err := parser.ParseFile(fset, "demo.go", src, parser.ParseComments)
	require.NoError(t, err)
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{Importer: imp, Error: func(error) {}}
	pkg, _ := conf.Check("example.com/demo", fset, []*ast.File{file}, info)
	require.NotNil(t, pkg)

	content, sites, diags := New(Config{}).ProcessFile(fset, file, []byte(src), pkg, info)
	require.Empty(t, diags)
	require.Equal(t, 1, sites)

	out := string(content)
	require.Contains(t, out, "mid.Take(lit.Uint[ext.Score2](77))")
	require.Contains(t, out, `"example.com/ext"`)
	require.Contains(t, out, `"example.com/mid"`)
	require.Contains(t, out, `"github.com/funvibe/litgo/pkg/lit"`)
}
