package rewrite

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/funvibe/litgo/internal/config"
	"github.com/funvibe/litgo/internal/diagnostics"
)

// Rewriter runs the transform over annotated files.
type Rewriter struct {
	cfg Config
}

// New builds a Rewriter; zero-value Config fields fall back to defaults.
func New(cfg Config) *Rewriter {
	cfg.applyDefaults()
	return &Rewriter{cfg: cfg}
}

// ProcessFile validates and rewrites one source file. It returns nil
// content when the file has no annotated functions. When any diagnostic is
// produced the content is nil too: an invalid literal means nothing may be
// generated for the file.
//
// The transform performs no validity logic of its own; every check is the
// registered conformance's.
func (r *Rewriter) ProcessFile(fset *token.FileSet, file *ast.File, src []byte, pkg *types.Package, info *types.Info) ([]byte, int, []*diagnostics.DiagnosticError) {
	var annotated []*ast.FuncDecl
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if ok && fd.Body != nil && hasDirective(fd) {
			annotated = append(annotated, fd)
		}
	}
	if len(annotated) == 0 {
		// A tagged file with nothing to rewrite gets no sibling, so its
		// declarations would silently drop out of the normal build.
		if hasBuildTag(src, r.cfg.Tag) {
			return nil, 0, []*diagnostics.DiagnosticError{diagnostics.Errorf(fset.Position(file.Pos()),
				"file has a //go:build %s constraint but no %s functions; its declarations are excluded from the build", r.cfg.Tag, config.Directive)}
		}
		return nil, 0, nil
	}

	var diags []*diagnostics.DiagnosticError
	if !hasBuildTag(src, r.cfg.Tag) {
		diags = append(diags, diagnostics.Errorf(fset.Position(file.Pos()),
			"file has %s functions but no //go:build %s constraint", config.Directive, r.cfg.Tag))
	}

	fr := newFileRewrite(fset, file, pkg, info)
	sites := 0
	for _, fd := range annotated {
		for _, s := range collectSites(fd, info) {
			sites++
			if d := fr.literal(s); d != nil {
				diags = append(diags, d)
			}
		}
	}
	if len(diags) > 0 {
		return nil, sites, diags
	}

	filename := fset.Position(file.Pos()).Filename
	content, err := r.renderFile(filename, src, fr)
	if err != nil {
		return nil, sites, []*diagnostics.DiagnosticError{
			diagnostics.Errorf(fset.Position(file.Pos()), "%s", err),
		}
	}
	return content, sites, nil
}

// hasDirective reports whether the function's doc comment carries the
// overload directive.
func hasDirective(fd *ast.FuncDecl) bool {
	if fd.Doc == nil {
		return false
	}
	for _, c := range fd.Doc.List {
		t := strings.TrimSpace(c.Text)
		if t == config.Directive || strings.HasPrefix(t, config.Directive+" ") {
			return true
		}
	}
	return false
}

// GeneratedPath maps a source file path to its generated sibling.
func (r *Rewriter) GeneratedPath(srcPath string) string {
	return strings.TrimSuffix(srcPath, ".go") + r.cfg.Suffix
}
