package lit

import (
	"fmt"
	"math/big"
	"sync"
)

// ValidationError is the single failure kind for literal validity. The
// rewriter turns it into a positioned diagnostic and aborts generation;
// there is no runtime path for it.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Invalid builds a *ValidationError with a formatted reason.
func Invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Conformance is the build-time half of a target type's contracts: the
// validity checks the rewriter runs on literals bound to that type. It is
// static and stateless; every check must be a pure function of the literal.
//
// Integer literals are checked at arbitrary precision. A check returns nil
// to accept the literal unchanged, or a *ValidationError to abort the build.
type Conformance struct {
	// Type is the target type's fully qualified name as go/types prints it,
	// e.g. "github.com/funvibe/litgo/pkg/nonzero.U8", or a basic type name
	// like "uint8".
	Type string

	// CheckUnsigned validates a bare integer literal. Nil means the type
	// does not conform to the unsigned contract.
	CheckUnsigned func(lit *big.Int) error

	// CheckSigned validates a minus-prefixed integer literal. Nil means the
	// type does not conform to the signed contract. Unsigned target types
	// conform with legal range [0, max], so negative literals fail it.
	CheckSigned func(lit *big.Int) error

	// CheckStr validates a string literal's projected content. Nil means
	// the type does not conform to the string contract.
	CheckStr func(lit string) error

	// Builtin marks Go's own basic types. Their literals are validated but
	// left in place: the compiler's constant conversion already is the
	// unchecked constructor.
	Builtin bool
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Conformance)
)

// Register records a conformance under its type name. It is intended to be
// called from init functions of target-type packages. Registering an empty
// type name or the same name twice panics: both are authoring defects.
func Register(c Conformance) {
	if c.Type == "" {
		panic("lit: Register with empty type name")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[c.Type]; dup {
		panic("lit: duplicate conformance for " + c.Type)
	}
	registry[c.Type] = c
}

// Lookup returns the conformance registered for typeName, if any.
func Lookup(typeName string) (Conformance, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[typeName]
	return c, ok
}

// Range builds a check accepting literals in [min, max].
func Range(min, max *big.Int) func(lit *big.Int) error {
	return func(lit *big.Int) error {
		if lit.Cmp(min) < 0 || lit.Cmp(max) > 0 {
			return Invalid("out of range [%s, %s]", min, max)
		}
		return nil
	}
}

// UnsignedRange builds a check accepting literals in [0, max].
func UnsignedRange(max uint64) func(lit *big.Int) error {
	return Range(new(big.Int), new(big.Int).SetUint64(max))
}

// SignedRange builds a check accepting literals in [min, max].
func SignedRange(min, max int64) func(lit *big.Int) error {
	return Range(big.NewInt(min), big.NewInt(max))
}

// NonZero wraps a check, additionally rejecting zero.
func NonZero(inner func(lit *big.Int) error) func(lit *big.Int) error {
	return func(lit *big.Int) error {
		if lit.Sign() == 0 {
			return Invalid("must be nonzero")
		}
		return inner(lit)
	}
}
