package rewrite

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/litgo/internal/diagnostics"
)

// GeneratedFile is one rendered output awaiting Write.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// Result is the outcome of a run over a set of packages.
type Result struct {
	Files []GeneratedFile
	Diags []*diagnostics.DiagnosticError
	Sites int
}

// OK reports whether every literal validated.
func (res *Result) OK() bool { return len(res.Diags) == 0 }

// Write writes all generated files. Call only when OK.
func (res *Result) Write() error {
	for _, f := range res.Files {
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// Run loads the packages matched by patterns (the configured patterns when
// empty) under the annotation build tag and processes every annotated file.
// Type errors during loading are expected — annotated sources are ill-typed
// at literal sites until rewritten — and are not reported; literal validity
// is judged solely by the registered conformances.
//
// Generated siblings carry the inverse build constraint, so a tagged load
// never sees a file and its sibling together; the suffix check below guards
// against siblings produced by older runs without the constraint.
func (r *Rewriter) Run(patterns []string) (*Result, error) {
	if len(patterns) == 0 {
		patterns = r.cfg.Packages
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo,
		BuildFlags: []string{"-tags=" + r.cfg.Tag},
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}

	res := &Result{}
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Pos()).Filename
			if strings.HasSuffix(filename, r.cfg.Suffix) {
				continue
			}
			src, err := os.ReadFile(filename)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", filename, err)
			}
			content, sites, diags := r.ProcessFile(pkg.Fset, file, src, pkg.Types, pkg.TypesInfo)
			res.Sites += sites
			res.Diags = append(res.Diags, diags...)
			if content != nil {
				res.Files = append(res.Files, GeneratedFile{Path: r.GeneratedPath(filename), Content: content})
			}
		}
	}
	diagnostics.Sort(res.Diags)
	return res, nil
}
