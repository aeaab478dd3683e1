package lit

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"
)

func bigUint64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

func TestBuiltinUnsignedBoundaries(t *testing.T) {
	tests := []struct {
		typ  string
		lit  *big.Int
		want bool
	}{
		{"uint8", big.NewInt(0), true},
		{"uint8", big.NewInt(255), true},
		{"uint8", big.NewInt(256), false},
		{"uint16", big.NewInt(65535), true},
		{"uint16", big.NewInt(65536), false},
		{"uint32", big.NewInt(1 << 32), false},
		{"uint64", bigUint64(math.MaxUint64), true},
		{"uint64", new(big.Int).Add(bigUint64(math.MaxUint64), big.NewInt(1)), false},
		{"int8", big.NewInt(127), true},
		{"int8", big.NewInt(128), false},
	}
	for _, tt := range tests {
		conf, ok := Lookup(tt.typ)
		if !ok {
			t.Fatalf("no builtin conformance for %s", tt.typ)
		}
		err := conf.CheckUnsigned(tt.lit)
		if (err == nil) != tt.want {
			t.Errorf("%s CheckUnsigned(%s) = %v, want ok=%v", tt.typ, tt.lit, err, tt.want)
		}
	}
}

func TestBuiltinSignedBoundaries(t *testing.T) {
	tests := []struct {
		typ  string
		lit  *big.Int
		want bool
	}{
		{"int8", big.NewInt(-128), true},
		{"int8", big.NewInt(-129), false},
		{"int8", big.NewInt(127), true},
		{"int8", big.NewInt(128), false},
		{"int16", big.NewInt(-32768), true},
		{"int16", big.NewInt(-32769), false},
		{"int64", big.NewInt(math.MinInt64), true},
		// Negative literals bound to unsigned targets fail the signed check.
		{"uint8", big.NewInt(-1), false},
		{"uint8", big.NewInt(0), true},
		{"uint64", big.NewInt(-1), false},
	}
	for _, tt := range tests {
		conf, ok := Lookup(tt.typ)
		if !ok {
			t.Fatalf("no builtin conformance for %s", tt.typ)
		}
		err := conf.CheckSigned(tt.lit)
		if (err == nil) != tt.want {
			t.Errorf("%s CheckSigned(%s) = %v, want ok=%v", tt.typ, tt.lit, err, tt.want)
		}
	}
}

func TestBuiltinStringAlwaysValid(t *testing.T) {
	conf, ok := Lookup("string")
	if !ok {
		t.Fatal("no builtin conformance for string")
	}
	for _, s := range []string{"", "hello", "\x00\xff"} {
		if err := conf.CheckStr(s); err != nil {
			t.Errorf("string CheckStr(%q) = %v, want nil", s, err)
		}
	}
}

func TestNonZeroRejectsZeroFirst(t *testing.T) {
	check := NonZero(UnsignedRange(10))
	if err := check(big.NewInt(0)); err == nil || !strings.Contains(err.Error(), "must be nonzero") {
		t.Errorf("NonZero check on 0 = %v, want nonzero error", err)
	}
	if err := check(big.NewInt(11)); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("NonZero check on 11 = %v, want range error", err)
	}
	if err := check(big.NewInt(10)); err != nil {
		t.Errorf("NonZero check on 10 = %v, want nil", err)
	}
}

func TestChecksArePure(t *testing.T) {
	conf, _ := Lookup("int8")
	lit := big.NewInt(300)
	first := conf.CheckSigned(lit)
	second := conf.CheckSigned(lit)
	if first == nil || second == nil || first.Error() != second.Error() {
		t.Errorf("check not stable: %v vs %v", first, second)
	}
}

func TestValidationErrorReason(t *testing.T) {
	err := UnsignedRange(255)(big.NewInt(300))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("check error = %T, want *ValidationError", err)
	}
	if !strings.Contains(verr.Reason, "out of range [0, 255]") {
		t.Errorf("reason = %q, want range message", verr.Reason)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	Register(Conformance{Type: "example.com/x.Dup"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Conformance{Type: "example.com/x.Dup"})
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty-name Register did not panic")
		}
	}()
	Register(Conformance{})
}
