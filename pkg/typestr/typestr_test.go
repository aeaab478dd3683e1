package typestr

import "testing"

func TestStrEmpty(t *testing.T) {
	if got := Str[Nil](); got != "" {
		t.Errorf("Str[Nil]() = %q, want empty", got)
	}
}

func TestStrProjectsBytesInOrder(t *testing.T) {
	// "hello" = 104 101 108 108 111
	got := Str[Cons[B104, Cons[B101, Cons[B108, Cons[B108, Cons[B111, Nil]]]]]]()
	if got != "hello" {
		t.Errorf("projection = %q, want %q", got, "hello")
	}
}

func TestStrSingleByte(t *testing.T) {
	if got := Str[Cons[B0, Nil]](); got != "\x00" {
		t.Errorf("projection = %q, want %q", got, "\x00")
	}
	if got := Str[Cons[B255, Nil]](); got != "\xff" {
		t.Errorf("projection = %q, want %q", got, "\xff")
	}
}

func TestStrMultibyteUTF8(t *testing.T) {
	// "é" is 0xc3 0xa9 in UTF-8.
	got := Str[Cons[B195, Cons[B169, Nil]]]()
	if got != "é" {
		t.Errorf("projection = %q, want %q", got, "é")
	}
}

func TestStrIsPure(t *testing.T) {
	a := Str[Cons[B104, Cons[B105, Nil]]]()
	b := Str[Cons[B104, Cons[B105, Nil]]]()
	if a != b || a != "hi" {
		t.Errorf("projection not stable: %q vs %q", a, b)
	}
}
