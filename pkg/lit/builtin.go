package lit

import "math"

// Conformances for Go's own basic types. Each integer width accepts exactly
// its representable range under both numeric contracts; unsigned widths use
// [0, max] for the signed contract as well, so a negative literal bound to
// an unsigned target is rejected at build time. Literals for these types are
// validated but never rewritten.
func init() {
	builtins := []Conformance{
		{Type: "uint8", CheckUnsigned: UnsignedRange(math.MaxUint8), CheckSigned: UnsignedRange(math.MaxUint8)},
		{Type: "uint16", CheckUnsigned: UnsignedRange(math.MaxUint16), CheckSigned: UnsignedRange(math.MaxUint16)},
		{Type: "uint32", CheckUnsigned: UnsignedRange(math.MaxUint32), CheckSigned: UnsignedRange(math.MaxUint32)},
		{Type: "uint64", CheckUnsigned: UnsignedRange(math.MaxUint64), CheckSigned: UnsignedRange(math.MaxUint64)},
		{Type: "uint", CheckUnsigned: UnsignedRange(uint64(^uint(0))), CheckSigned: UnsignedRange(uint64(^uint(0)))},
		{Type: "uintptr", CheckUnsigned: UnsignedRange(uint64(^uintptr(0))), CheckSigned: UnsignedRange(uint64(^uintptr(0)))},
		{Type: "int8", CheckUnsigned: UnsignedRange(math.MaxInt8), CheckSigned: SignedRange(math.MinInt8, math.MaxInt8)},
		{Type: "int16", CheckUnsigned: UnsignedRange(math.MaxInt16), CheckSigned: SignedRange(math.MinInt16, math.MaxInt16)},
		{Type: "int32", CheckUnsigned: UnsignedRange(math.MaxInt32), CheckSigned: SignedRange(math.MinInt32, math.MaxInt32)},
		{Type: "int64", CheckUnsigned: UnsignedRange(math.MaxInt64), CheckSigned: SignedRange(math.MinInt64, math.MaxInt64)},
		{Type: "int", CheckUnsigned: UnsignedRange(math.MaxInt), CheckSigned: SignedRange(math.MinInt, math.MaxInt)},
		{Type: "string", CheckStr: func(string) error { return nil }},
	}
	for _, c := range builtins {
		c.Builtin = true
		Register(c)
	}
}
