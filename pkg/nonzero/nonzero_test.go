package nonzero

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/funvibe/litgo/pkg/lit"
)

func TestCheckedConstructorsRejectZero(t *testing.T) {
	if _, err := NewU8(0); err != ErrZero {
		t.Errorf("NewU8(0) err = %v, want ErrZero", err)
	}
	if _, err := NewI64(0); err != ErrZero {
		t.Errorf("NewI64(0) err = %v, want ErrZero", err)
	}
	if _, err := NewUint(0); err != ErrZero {
		t.Errorf("NewUint(0) err = %v, want ErrZero", err)
	}
}

func TestCheckedConstructors(t *testing.T) {
	u, err := NewU16(500)
	if err != nil || u.Value() != 500 {
		t.Errorf("NewU16(500) = (%v, %v)", u.Value(), err)
	}
	i, err := NewI8(-5)
	if err != nil || i.Value() != -5 {
		t.Errorf("NewI8(-5) = (%v, %v)", i.Value(), err)
	}
}

func TestLiteralConstructors(t *testing.T) {
	if got := lit.Uint[U8](10); got.Value() != 10 {
		t.Errorf("Uint[U8](10) = %d", got.Value())
	}
	if got := lit.Int[I8](-20); got.Value() != -20 {
		t.Errorf("Int[I8](-20) = %d", got.Value())
	}
	if got := lit.Uint[I8](2); got.Value() != 2 {
		t.Errorf("Uint[I8](2) = %d", got.Value())
	}
	if got := lit.Uint[U64](math.MaxUint64); got.Value() != math.MaxUint64 {
		t.Errorf("Uint[U64](max) = %d", got.Value())
	}
}

func TestConformanceChecks(t *testing.T) {
	tests := []struct {
		typ    string
		signed bool
		lit    *big.Int
		want   string // "" means valid
	}{
		{pkgPath + ".U8", false, big.NewInt(1), ""},
		{pkgPath + ".U8", false, big.NewInt(255), ""},
		{pkgPath + ".U8", false, big.NewInt(0), "must be nonzero"},
		{pkgPath + ".U8", false, big.NewInt(256), "out of range"},
		{pkgPath + ".U8", true, big.NewInt(-1), "out of range"},
		{pkgPath + ".U8", true, big.NewInt(0), "must be nonzero"},
		{pkgPath + ".I8", true, big.NewInt(-128), ""},
		{pkgPath + ".I8", true, big.NewInt(-129), "out of range"},
		{pkgPath + ".I8", false, big.NewInt(127), ""},
		{pkgPath + ".I8", false, big.NewInt(128), "out of range"},
		{pkgPath + ".I8", false, big.NewInt(0), "must be nonzero"},
		{pkgPath + ".U64", false, new(big.Int).SetUint64(math.MaxUint64), ""},
		{pkgPath + ".Int", true, big.NewInt(math.MinInt), ""},
	}
	for _, tt := range tests {
		conf, ok := lit.Lookup(tt.typ)
		if !ok {
			t.Fatalf("no conformance for %s", tt.typ)
		}
		check := conf.CheckUnsigned
		if tt.signed {
			check = conf.CheckSigned
		}
		err := check(tt.lit)
		if tt.want == "" {
			if err != nil {
				t.Errorf("%s check(%s) = %v, want nil", tt.typ, tt.lit, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s check(%s) = %v, want %q", tt.typ, tt.lit, err, tt.want)
		}
	}
}

func TestAllWrappersRegistered(t *testing.T) {
	for _, name := range []string{"U8", "U16", "U32", "U64", "Uint", "I8", "I16", "I32", "I64", "Int"} {
		conf, ok := lit.Lookup(pkgPath + "." + name)
		if !ok {
			t.Errorf("no conformance registered for %s", name)
			continue
		}
		if conf.CheckUnsigned == nil || conf.CheckSigned == nil {
			t.Errorf("%s must conform to both numeric contracts", name)
		}
		if conf.Builtin {
			t.Errorf("%s must not be marked builtin", name)
		}
	}
}
