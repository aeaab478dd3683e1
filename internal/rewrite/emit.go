package rewrite

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/funvibe/litgo/internal/config"
)

// applyEdits replaces the edited byte ranges, last edit first so earlier
// offsets stay valid. Sites never overlap: each edit covers one literal (or
// one minus-prefixed literal).
func applyEdits(src []byte, edits []edit) []byte {
	sorted := make([]edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start > sorted[j].start })

	out := make([]byte, len(src))
	copy(out, src)
	for _, e := range sorted {
		var next []byte
		next = append(next, out[:e.start]...)
		next = append(next, e.text...)
		next = append(next, out[e.end:]...)
		out = next
	}
	return out
}

// stripDirectives removes build constraint lines mentioning the tag and all
// litgo directive lines.
func stripDirectives(src []byte, tag string) []byte {
	lines := strings.Split(string(src), "\n")
	out := lines[:0]
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if constraint.IsGoBuild(t) || constraint.IsPlusBuild(t) {
			if expr, err := constraint.Parse(t); err == nil && mentionsTag(expr, tag) {
				continue
			}
		}
		if t == config.Directive || strings.HasPrefix(t, config.Directive+" ") {
			continue
		}
		out = append(out, line)
	}
	return []byte(strings.Join(out, "\n"))
}

func mentionsTag(expr constraint.Expr, tag string) bool {
	switch x := expr.(type) {
	case *constraint.TagExpr:
		return x.Tag == tag
	case *constraint.NotExpr:
		return mentionsTag(x.X, tag)
	case *constraint.AndExpr:
		return mentionsTag(x.X, tag) || mentionsTag(x.Y, tag)
	case *constraint.OrExpr:
		return mentionsTag(x.X, tag) || mentionsTag(x.Y, tag)
	}
	return false
}

// hasBuildTag reports whether the constraint lines before the package
// clause mention the tag.
func hasBuildTag(src []byte, tag string) bool {
	for _, line := range strings.Split(string(src), "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "package ") {
			return false
		}
		if constraint.IsGoBuild(t) || constraint.IsPlusBuild(t) {
			if expr, err := constraint.Parse(t); err == nil && mentionsTag(expr, tag) {
				return true
			}
		}
	}
	return false
}

// renderFile produces the generated sibling's content: edits applied,
// constraint and directives gone, generated header plus the inverse
// constraint on top, imports fixed up, gofmt formatting. The inverse
// constraint keeps the sibling out of tagged loads, so the annotated
// original and the generated file are never part of the same build. The
// result is a pure function of the source and the registry, so regeneration
// is always byte-identical.
func (r *Rewriter) renderFile(filename string, src []byte, fr *fileRewrite) ([]byte, error) {
	content := applyEdits(src, fr.edits)
	content = stripDirectives(content, r.cfg.Tag)
	content = bytes.TrimLeft(content, "\n")
	content = append([]byte(config.GeneratedHeader+"\n\n//go:build !"+r.cfg.Tag+"\n\n"), content...)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("reparsing rewritten %s: %w", filename, err)
	}
	if fr.needLit {
		if _, ok := fr.importNames[config.LitImportPath]; !ok {
			astutil.AddImport(fset, file, config.LitImportPath)
		}
	}
	if fr.needTypeStr {
		if _, ok := fr.importNames[config.TypeStrImportPath]; !ok {
			astutil.AddImport(fset, file, config.TypeStrImportPath)
		}
	}
	paths := make([]string, 0, len(fr.extraImports))
	for path := range fr.extraImports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if _, ok := fr.importNames[path]; ok {
			continue
		}
		if name := fr.extraImports[path]; name != pathBase(path) {
			astutil.AddNamedImport(fset, file, name, path)
		} else {
			astutil.AddImport(fset, file, path)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("formatting rewritten %s: %w", filename, err)
	}
	return buf.Bytes(), nil
}
