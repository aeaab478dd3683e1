package rewrite

import (
	"go/ast"
	"go/token"
	"go/types"
)

// site is one literal occurrence inside an annotated function: the token,
// whether it is minus-prefixed, the node the rewrite replaces (the literal
// itself, or the enclosing unary minus), and the target type inferred from
// the site's syntactic context. A site inside a const declaration is
// validated but never rewritten: a dispatch call is not a constant
// expression.
type site struct {
	lit       *ast.BasicLit
	expr      ast.Expr
	neg       bool
	target    types.Type
	constDecl bool
}

// collectSites walks one annotated function and returns its literal sites
// in source order. Only integer and string basic literals are considered;
// sites whose target type cannot be inferred from context are dropped (the
// literal is left untouched, Go's own typing applies).
//
// A bare integer token is an unsigned-contract site; only a token directly
// under a unary minus is a signed-contract site. This is the canonical
// routing rule: sign is a property of the syntax, never of the context.
func collectSites(fn *ast.FuncDecl, info *types.Info) []site {
	var sites []site
	var stack []ast.Node
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		stack = append(stack, n)
		bl, ok := n.(*ast.BasicLit)
		if !ok || (bl.Kind != token.INT && bl.Kind != token.STRING) {
			return true
		}

		s := site{lit: bl, expr: bl}
		ctx := len(stack) - 2
		if ctx >= 0 {
			if u, ok := stack[ctx].(*ast.UnaryExpr); ok && u.Op == token.SUB && bl.Kind == token.INT {
				s.neg = true
				s.expr = u
				ctx--
			}
		}
		if ctx < 0 {
			return true
		}
		t, ok := targetType(stack[:ctx+1], stack[ctx], s.expr, fn, info)
		if !ok || t == nil {
			return true
		}
		s.target = t
		if _, isSpec := stack[ctx].(*ast.ValueSpec); isSpec && ctx > 0 {
			if gd, ok := stack[ctx-1].(*ast.GenDecl); ok && gd.Tok == token.CONST {
				s.constDecl = true
			}
		}
		sites = append(sites, s)
		return true
	})
	return sites
}

// targetType resolves the statically known target type of expr from its
// immediate context node. Supported contexts: var declarations with an
// explicit type, plain assignments, call arguments (including variadic),
// return statements, and composite literal fields, elements and map keys.
func targetType(stack []ast.Node, ctx ast.Node, expr ast.Expr, fn *ast.FuncDecl, info *types.Info) (types.Type, bool) {
	switch p := ctx.(type) {
	case *ast.ValueSpec:
		if p.Type == nil {
			return nil, false
		}
		if exprIndex(p.Values, expr) < 0 {
			return nil, false
		}
		return info.TypeOf(p.Type), true

	case *ast.AssignStmt:
		if p.Tok != token.ASSIGN {
			return nil, false
		}
		i := exprIndex(p.Rhs, expr)
		if i < 0 || len(p.Lhs) != len(p.Rhs) {
			return nil, false
		}
		if id, ok := p.Lhs[i].(*ast.Ident); ok && id.Name == "_" {
			return nil, false
		}
		return info.TypeOf(p.Lhs[i]), true

	case *ast.CallExpr:
		i := exprIndex(p.Args, expr)
		if i < 0 || p.Ellipsis.IsValid() {
			return nil, false
		}
		if tv, ok := info.Types[p.Fun]; !ok || tv.IsType() {
			// Explicit conversions keep their literal: T(10) already names
			// its target and is checked by the compiler.
			return nil, false
		}
		ft := info.TypeOf(p.Fun)
		if ft == nil {
			return nil, false
		}
		sig, ok := ft.Underlying().(*types.Signature)
		if !ok {
			return nil, false
		}
		if sig.Variadic() && i >= sig.Params().Len()-1 {
			last := sig.Params().At(sig.Params().Len() - 1)
			if slice, ok := last.Type().Underlying().(*types.Slice); ok {
				return slice.Elem(), true
			}
			return nil, false
		}
		if i < sig.Params().Len() {
			return sig.Params().At(i).Type(), true
		}
		return nil, false

	case *ast.ReturnStmt:
		i := exprIndex(p.Results, expr)
		if i < 0 {
			return nil, false
		}
		sig := enclosingSignature(stack, fn, info)
		if sig == nil || sig.Results().Len() != len(p.Results) {
			return nil, false
		}
		return sig.Results().At(i).Type(), true

	case *ast.KeyValueExpr:
		if len(stack) < 2 {
			return nil, false
		}
		cl, ok := stack[len(stack)-2].(*ast.CompositeLit)
		if !ok {
			return nil, false
		}
		ct := info.TypeOf(cl)
		if ct == nil {
			return nil, false
		}
		switch u := ct.Underlying().(type) {
		case *types.Struct:
			if expr != p.Value {
				return nil, false
			}
			key, ok := p.Key.(*ast.Ident)
			if !ok {
				return nil, false
			}
			for i := 0; i < u.NumFields(); i++ {
				if u.Field(i).Name() == key.Name {
					return u.Field(i).Type(), true
				}
			}
			return nil, false
		case *types.Map:
			if expr == p.Key {
				return u.Key(), true
			}
			return u.Elem(), true
		case *types.Slice:
			// Indexed element form: []T{0: x}.
			if expr == p.Value {
				return u.Elem(), true
			}
			return nil, false
		case *types.Array:
			if expr == p.Value {
				return u.Elem(), true
			}
			return nil, false
		}
		return nil, false

	case *ast.CompositeLit:
		ct := info.TypeOf(p)
		if ct == nil {
			return nil, false
		}
		i := exprIndex(p.Elts, expr)
		if i < 0 {
			return nil, false
		}
		switch u := ct.Underlying().(type) {
		case *types.Slice:
			return u.Elem(), true
		case *types.Array:
			return u.Elem(), true
		case *types.Struct:
			if i < u.NumFields() {
				return u.Field(i).Type(), true
			}
		}
		return nil, false
	}
	return nil, false
}

// enclosingSignature finds the signature governing a return statement: the
// nearest function literal on the stack, or the annotated declaration.
func enclosingSignature(stack []ast.Node, fn *ast.FuncDecl, info *types.Info) *types.Signature {
	for i := len(stack) - 1; i >= 0; i-- {
		if fl, ok := stack[i].(*ast.FuncLit); ok {
			if sig, ok := info.TypeOf(fl).(*types.Signature); ok {
				return sig
			}
			return nil
		}
	}
	obj := info.Defs[fn.Name]
	if obj == nil {
		return nil
	}
	sig, _ := obj.Type().(*types.Signature)
	return sig
}

func exprIndex(list []ast.Expr, e ast.Expr) int {
	for i, x := range list {
		if x == e {
			return i
		}
	}
	return -1
}
