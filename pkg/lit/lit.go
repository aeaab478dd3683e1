// Package lit defines the literal dispatch contracts: the protocol that lets
// a bare integer or string literal construct a smart-constructor type with
// its validity proven before the program is built.
//
// A contract has two halves. The build-time half is a [Conformance]: a set of
// validity checks the litgo rewriter runs against every literal while the
// annotated source is being processed — a failed check aborts generation, so
// an invalid literal never reaches the compiler, let alone runtime. The
// runtime half is one of the single-method interfaces below, implemented by
// the target type itself; its constructor is infallible because only
// literals that passed the build-time half can flow into it.
//
// The rewriter emits calls to [Uint], [Int] and [String]; they are exported
// so that generated code (and tests) can reach them, not for hand-written
// call sites.
package lit

import "github.com/funvibe/litgo/pkg/typestr"

// Unsigned is the runtime half of the unsigned-integer contract. A bare
// (non-minus-prefixed) integer literal routes through this contract.
type Unsigned[T any] interface {
	// FromLiteralUnsigned builds T from a literal already proven valid at
	// build time. It must not re-check; it may use unchecked construction.
	FromLiteralUnsigned(lit uint64) T
}

// Signed is the runtime half of the signed-integer contract. Only
// minus-prefixed integer literals route through this contract.
type Signed[T any] interface {
	// FromLiteralSigned builds T from a literal already proven valid at
	// build time. It must not re-check; it may use unchecked construction.
	FromLiteralSigned(lit int64) T
}

// Str is the runtime half of the string contract. The literal's content is
// carried as a [typestr.TypeStr] type argument and projected back to a
// string before construction.
type Str[T any] interface {
	// FromLiteralStr builds T from content already proven valid at build
	// time. It must not re-check; it may use unchecked construction.
	FromLiteralStr(lit string) T
}

// Uint builds T from an unsigned integer literal validated at build time.
func Uint[T Unsigned[T]](lit uint64) T {
	var z T
	return z.FromLiteralUnsigned(lit)
}

// Int builds T from a signed integer literal validated at build time.
func Int[T Signed[T]](lit int64) T {
	var z T
	return z.FromLiteralSigned(lit)
}

// String builds T from the string literal encoded by S, validated at build
// time. The literal's bytes travel only in the type argument.
func String[T Str[T], S typestr.TypeStr]() T {
	var z T
	return z.FromLiteralStr(typestr.Str[S]())
}
