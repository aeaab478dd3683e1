// Package nonzero provides integer wrapper types that are guaranteed to
// hold a nonzero value.
//
// Each type has a checked runtime constructor (NewU8 and friends, returning
// [ErrZero] for zero) and a pair of unchecked literal constructors that
// satisfy the lit contracts. The unchecked constructors perform no checks at
// all: the litgo rewriter has already proven the literal nonzero and in
// range before the program is built, so zero and out-of-range values cannot
// reach them through generated code.
package nonzero

import (
	"errors"
	"math"

	"github.com/funvibe/litgo/pkg/lit"
)

const pkgPath = "github.com/funvibe/litgo/pkg/nonzero"

// ErrZero is returned by the checked constructors when given zero.
var ErrZero = errors.New("nonzero: value is zero")

// U8 holds a uint8 guaranteed to be nonzero.
type U8 struct{ v uint8 }

// NewU8 returns ErrZero when v is zero.
func NewU8(v uint8) (U8, error) {
	if v == 0 {
		return U8{}, ErrZero
	}
	return U8{v}, nil
}

// Value returns the wrapped integer.
func (n U8) Value() uint8 { return n.v }

// FromLiteralUnsigned builds a U8 from a literal already proven nonzero and
// in range at build time.
func (U8) FromLiteralUnsigned(lit uint64) U8 { return U8{uint8(lit)} }

// FromLiteralSigned builds a U8 from a literal already proven nonzero and
// in range at build time.
func (U8) FromLiteralSigned(lit int64) U8 { return U8{uint8(lit)} }

// U16 holds a uint16 guaranteed to be nonzero.
type U16 struct{ v uint16 }

func NewU16(v uint16) (U16, error) {
	if v == 0 {
		return U16{}, ErrZero
	}
	return U16{v}, nil
}

func (n U16) Value() uint16 { return n.v }

func (U16) FromLiteralUnsigned(lit uint64) U16 { return U16{uint16(lit)} }

func (U16) FromLiteralSigned(lit int64) U16 { return U16{uint16(lit)} }

// U32 holds a uint32 guaranteed to be nonzero.
type U32 struct{ v uint32 }

func NewU32(v uint32) (U32, error) {
	if v == 0 {
		return U32{}, ErrZero
	}
	return U32{v}, nil
}

func (n U32) Value() uint32 { return n.v }

func (U32) FromLiteralUnsigned(lit uint64) U32 { return U32{uint32(lit)} }

func (U32) FromLiteralSigned(lit int64) U32 { return U32{uint32(lit)} }

// U64 holds a uint64 guaranteed to be nonzero.
type U64 struct{ v uint64 }

func NewU64(v uint64) (U64, error) {
	if v == 0 {
		return U64{}, ErrZero
	}
	return U64{v}, nil
}

func (n U64) Value() uint64 { return n.v }

func (U64) FromLiteralUnsigned(lit uint64) U64 { return U64{lit} }

func (U64) FromLiteralSigned(lit int64) U64 { return U64{uint64(lit)} }

// Uint holds a uint guaranteed to be nonzero.
type Uint struct{ v uint }

func NewUint(v uint) (Uint, error) {
	if v == 0 {
		return Uint{}, ErrZero
	}
	return Uint{v}, nil
}

func (n Uint) Value() uint { return n.v }

func (Uint) FromLiteralUnsigned(lit uint64) Uint { return Uint{uint(lit)} }

func (Uint) FromLiteralSigned(lit int64) Uint { return Uint{uint(lit)} }

// I8 holds an int8 guaranteed to be nonzero.
type I8 struct{ v int8 }

func NewI8(v int8) (I8, error) {
	if v == 0 {
		return I8{}, ErrZero
	}
	return I8{v}, nil
}

func (n I8) Value() int8 { return n.v }

func (I8) FromLiteralUnsigned(lit uint64) I8 { return I8{int8(lit)} }

func (I8) FromLiteralSigned(lit int64) I8 { return I8{int8(lit)} }

// I16 holds an int16 guaranteed to be nonzero.
type I16 struct{ v int16 }

func NewI16(v int16) (I16, error) {
	if v == 0 {
		return I16{}, ErrZero
	}
	return I16{v}, nil
}

func (n I16) Value() int16 { return n.v }

func (I16) FromLiteralUnsigned(lit uint64) I16 { return I16{int16(lit)} }

func (I16) FromLiteralSigned(lit int64) I16 { return I16{int16(lit)} }

// I32 holds an int32 guaranteed to be nonzero.
type I32 struct{ v int32 }

func NewI32(v int32) (I32, error) {
	if v == 0 {
		return I32{}, ErrZero
	}
	return I32{v}, nil
}

func (n I32) Value() int32 { return n.v }

func (I32) FromLiteralUnsigned(lit uint64) I32 { return I32{int32(lit)} }

func (I32) FromLiteralSigned(lit int64) I32 { return I32{int32(lit)} }

// I64 holds an int64 guaranteed to be nonzero.
type I64 struct{ v int64 }

func NewI64(v int64) (I64, error) {
	if v == 0 {
		return I64{}, ErrZero
	}
	return I64{v}, nil
}

func (n I64) Value() int64 { return n.v }

func (I64) FromLiteralUnsigned(lit uint64) I64 { return I64{int64(lit)} }

func (I64) FromLiteralSigned(lit int64) I64 { return I64{lit} }

// Int holds an int guaranteed to be nonzero.
type Int struct{ v int }

func NewInt(v int) (Int, error) {
	if v == 0 {
		return Int{}, ErrZero
	}
	return Int{v}, nil
}

func (n Int) Value() int { return n.v }

func (Int) FromLiteralUnsigned(lit uint64) Int { return Int{int(lit)} }

func (Int) FromLiteralSigned(lit int64) Int { return Int{int(lit)} }

// Every wrapper conforms to both numeric contracts. The unsigned hosts use
// [0, max] for the signed contract too, so a minus-prefixed literal bound to
// them fails as out of range; zero fails first with "must be nonzero".
func init() {
	conformances := []lit.Conformance{
		{Type: pkgPath + ".U8", CheckUnsigned: lit.UnsignedRange(math.MaxUint8), CheckSigned: lit.UnsignedRange(math.MaxUint8)},
		{Type: pkgPath + ".U16", CheckUnsigned: lit.UnsignedRange(math.MaxUint16), CheckSigned: lit.UnsignedRange(math.MaxUint16)},
		{Type: pkgPath + ".U32", CheckUnsigned: lit.UnsignedRange(math.MaxUint32), CheckSigned: lit.UnsignedRange(math.MaxUint32)},
		{Type: pkgPath + ".U64", CheckUnsigned: lit.UnsignedRange(math.MaxUint64), CheckSigned: lit.UnsignedRange(math.MaxUint64)},
		{Type: pkgPath + ".Uint", CheckUnsigned: lit.UnsignedRange(uint64(^uint(0))), CheckSigned: lit.UnsignedRange(uint64(^uint(0)))},
		{Type: pkgPath + ".I8", CheckUnsigned: lit.UnsignedRange(math.MaxInt8), CheckSigned: lit.SignedRange(math.MinInt8, math.MaxInt8)},
		{Type: pkgPath + ".I16", CheckUnsigned: lit.UnsignedRange(math.MaxInt16), CheckSigned: lit.SignedRange(math.MinInt16, math.MaxInt16)},
		{Type: pkgPath + ".I32", CheckUnsigned: lit.UnsignedRange(math.MaxInt32), CheckSigned: lit.SignedRange(math.MinInt32, math.MaxInt32)},
		{Type: pkgPath + ".I64", CheckUnsigned: lit.UnsignedRange(math.MaxInt64), CheckSigned: lit.SignedRange(math.MinInt64, math.MaxInt64)},
		{Type: pkgPath + ".Int", CheckUnsigned: lit.UnsignedRange(math.MaxInt), CheckSigned: lit.SignedRange(math.MinInt, math.MaxInt)},
	}
	for _, c := range conformances {
		c.CheckUnsigned = lit.NonZero(c.CheckUnsigned)
		c.CheckSigned = lit.NonZero(c.CheckSigned)
		lit.Register(c)
	}
}
