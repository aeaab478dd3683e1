// Package typestr carries the bytes of a string literal through the type
// system.
//
// Go type parameters range over types, never over values, so a string
// literal cannot be a type argument directly. Instead the literal's UTF-8
// bytes are spelled as a nested sequence of zero-size marker types:
//
//	typestr.Cons[typestr.B104, typestr.Cons[typestr.B105, typestr.Nil]] // "hi"
//
// The rewriting tool builds these type expressions; user code never writes
// them by hand. [Str] projects a sequence back to its runtime string.
//
// Both [TypeStr] and [Byte] are sealed: their only implementations live in
// this package, so an ill-formed encoding cannot be constructed elsewhere.
package typestr

//go:generate go run ./gen

// TypeStr is an ordered, fixed-length sequence of byte markers encoding a
// string literal. Its only implementations are [Nil] and [Cons].
type TypeStr interface {
	appendBytes(buf []byte) []byte
}

// Nil is the empty sequence. It projects to the empty string.
type Nil struct{}

func (Nil) appendBytes(buf []byte) []byte { return buf }

// Cons is a non-empty sequence: one head marker followed by the rest.
type Cons[H Byte, T TypeStr] struct{}

func (Cons[H, T]) appendBytes(buf []byte) []byte {
	var h H
	var t T
	return t.appendBytes(append(buf, h.byteValue()))
}

// Byte is a single type-level byte value. Its only implementations are the
// generated markers B0 through B255.
type Byte interface {
	byteValue() byte
}

// Str projects S to its canonical runtime string: the UTF-8 decoding of the
// marker sequence, in order, with no additional bytes.
func Str[S TypeStr]() string {
	var s S
	return string(s.appendBytes(nil))
}
