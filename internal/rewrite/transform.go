package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"math/big"
	"strconv"
	"strings"

	"github.com/funvibe/litgo/internal/config"
	"github.com/funvibe/litgo/internal/diagnostics"
	"github.com/funvibe/litgo/pkg/lit"
)

// edit is a byte-range replacement in the original source.
type edit struct {
	start, end int
	text       string
}

// fileRewrite accumulates the edits for one annotated file.
type fileRewrite struct {
	fset        *token.FileSet
	pkg         *types.Package
	importNames map[string]string // import path -> local name in this file
	litName     string            // local name for pkg/lit in emitted code
	typestrName string            // local name for pkg/typestr in emitted code

	edits        []edit
	needLit      bool
	needTypeStr  bool
	extraImports map[string]string // import path -> name, referenced by rendered types
}

func newFileRewrite(fset *token.FileSet, file *ast.File, pkg *types.Package, info *types.Info) *fileRewrite {
	names := make(map[string]string)
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		if spec.Name != nil {
			names[path] = spec.Name.Name
			continue
		}
		if p := importedPackage(pkg, path); p != nil {
			names[path] = p.Name()
		} else {
			names[path] = pathBase(path)
		}
	}
	fr := &fileRewrite{fset: fset, pkg: pkg, importNames: names, extraImports: make(map[string]string)}
	fr.litName = localName(names, config.LitImportPath, "lit")
	fr.typestrName = localName(names, config.TypeStrImportPath, "typestr")
	return fr
}

func localName(names map[string]string, path, fallback string) string {
	if name, ok := names[path]; ok {
		return name
	}
	return fallback
}

// pathBase guesses the package name for an import the type checker could
// not resolve. The last path element is right for every package this tool
// emits references to.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func importedPackage(pkg *types.Package, path string) *types.Package {
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}
	return nil
}

// literal validates one site against the registry and records its edit.
// Builtin targets are validated but keep their token. A site whose target
// type has no conformance for the literal's contract is a diagnostic: the
// literal was bound to that type on purpose and silently skipping it would
// smuggle the unvalidated token into the generated file.
func (fr *fileRewrite) literal(s site) *diagnostics.DiagnosticError {
	key, ok := conformanceKey(s.target)
	if !ok {
		// Interface, pointer and other structural targets are not literal
		// overloading sites; the token stays as written.
		return nil
	}
	conf, registered := lit.Lookup(key)
	if !registered {
		return fr.errorf(s, "no literal conformance registered for %s", fr.typeName(s.target))
	}

	if s.lit.Kind == token.STRING {
		return fr.stringLiteral(s, conf)
	}
	return fr.intLiteral(s, conf)
}

func (fr *fileRewrite) stringLiteral(s site, conf lit.Conformance) *diagnostics.DiagnosticError {
	if conf.CheckStr == nil {
		return fr.errorf(s, "%s does not conform to the string-literal contract", fr.typeName(s.target))
	}
	content, err := strconv.Unquote(s.lit.Value)
	if err != nil {
		return fr.errorf(s, "malformed string literal %s", s.lit.Value)
	}
	if err := conf.CheckStr(content); err != nil {
		return fr.errorf(s, "cannot use literal %s as %s: %s", s.lit.Value, fr.typeName(s.target), err)
	}
	if conf.Builtin || s.constDecl {
		return nil
	}
	fr.needLit = true
	fr.needTypeStr = true
	fr.replace(s.expr, fmt.Sprintf("%s.String[%s, %s]()", fr.litName, fr.typeName(s.target), fr.typeStrExpr(content)))
	return nil
}

func (fr *fileRewrite) intLiteral(s site, conf lit.Conformance) *diagnostics.DiagnosticError {
	check := conf.CheckUnsigned
	contract := "unsigned"
	if s.neg {
		check = conf.CheckSigned
		contract = "signed"
	}
	if check == nil {
		return fr.errorf(s, "%s does not conform to the %s-literal contract", fr.typeName(s.target), contract)
	}
	value, ok := new(big.Int).SetString(s.lit.Value, 0)
	if !ok {
		return fr.errorf(s, "malformed integer literal %s", s.lit.Value)
	}
	if s.neg {
		value.Neg(value)
	}
	if err := check(value); err != nil {
		return fr.errorf(s, "cannot use literal %s as %s: %s", tokenText(s), fr.typeName(s.target), err)
	}
	if conf.Builtin || s.constDecl {
		return nil
	}
	fr.needLit = true
	if s.neg {
		fr.replace(s.expr, fmt.Sprintf("%s.Int[%s](-%s)", fr.litName, fr.typeName(s.target), s.lit.Value))
	} else {
		fr.replace(s.expr, fmt.Sprintf("%s.Uint[%s](%s)", fr.litName, fr.typeName(s.target), s.lit.Value))
	}
	return nil
}

func (fr *fileRewrite) replace(e ast.Expr, text string) {
	fr.edits = append(fr.edits, edit{
		start: fr.fset.Position(e.Pos()).Offset,
		end:   fr.fset.Position(e.End()).Offset,
		text:  text,
	})
}

func (fr *fileRewrite) errorf(s site, format string, args ...any) *diagnostics.DiagnosticError {
	return diagnostics.Errorf(fr.fset.Position(s.expr.Pos()), format, args...)
}

// typeName renders t as it must appear in the rewritten file: unqualified
// when t belongs to the processed package, otherwise qualified with the
// file's local name for t's package. A package the file does not import
// itself (a target type reached through another package's signature) is
// recorded so renderFile can add the import.
func (fr *fileRewrite) typeName(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == fr.pkg {
			return ""
		}
		if name, ok := fr.importNames[p.Path()]; ok {
			return name
		}
		fr.extraImports[p.Path()] = p.Name()
		return p.Name()
	})
}

func tokenText(s site) string {
	if s.neg {
		return "-" + s.lit.Value
	}
	return s.lit.Value
}

// conformanceKey maps a target type to its registry key: the basic type
// name, or the fully qualified name of a named type. Structural types have
// no key and take no part in literal overloading.
func conformanceKey(t types.Type) (string, bool) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		if tt.Info()&types.IsUntyped != 0 {
			return "", false
		}
		return tt.Name(), true
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return "", false
		}
		return obj.Pkg().Path() + "." + obj.Name(), true
	}
	return "", false
}

// typeStrExpr spells the type-level encoding of s: one nested Cons per
// UTF-8 byte, terminated by Nil.
func (fr *fileRewrite) typeStrExpr(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&b, "%s.Cons[%s.B%d, ", fr.typestrName, fr.typestrName, s[i])
	}
	fmt.Fprintf(&b, "%s.Nil", fr.typestrName)
	b.WriteString(strings.Repeat("]", len(s)))
	return b.String()
}
