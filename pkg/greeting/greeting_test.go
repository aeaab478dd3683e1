package greeting

import (
	"strings"
	"testing"

	"github.com/funvibe/litgo/pkg/lit"
	"github.com/funvibe/litgo/pkg/typestr"
)

func check(t *testing.T) func(string) error {
	t.Helper()
	conf, ok := lit.Lookup("github.com/funvibe/litgo/pkg/greeting.Greeting")
	if !ok {
		t.Fatal("Greeting conformance not registered")
	}
	if conf.CheckStr == nil {
		t.Fatal("Greeting must conform to the string contract")
	}
	return conf.CheckStr
}

func TestCheckAcceptsKeywords(t *testing.T) {
	checkStr := check(t)
	for _, s := range []string{"hello", "goodbye"} {
		if err := checkStr(s); err != nil {
			t.Errorf("CheckStr(%q) = %v, want nil", s, err)
		}
	}
}

func TestCheckRejectsEverythingElse(t *testing.T) {
	checkStr := check(t)
	for _, s := range []string{"Hello", "hell", "goodbye ", "", "helloo"} {
		err := checkStr(s)
		if err == nil || !strings.Contains(err.Error(), "no matching keyword") {
			t.Errorf("CheckStr(%q) = %v, want keyword error", s, err)
		}
	}
}

func TestFromLiteralStr(t *testing.T) {
	if got := Greeting(0).FromLiteralStr("hello"); got != Hello {
		t.Errorf("FromLiteralStr(hello) = %v", got)
	}
	if got := Greeting(0).FromLiteralStr("goodbye"); got != Goodbye {
		t.Errorf("FromLiteralStr(goodbye) = %v", got)
	}
}

func TestDispatchThroughTypeStr(t *testing.T) {
	// "hello" = 104 101 108 108 111, the exact shape litgo emits.
	got := lit.String[Greeting, typestr.Cons[typestr.B104, typestr.Cons[typestr.B101, typestr.Cons[typestr.B108, typestr.Cons[typestr.B108, typestr.Cons[typestr.B111, typestr.Nil]]]]]]()
	if got != Hello {
		t.Errorf("dispatch = %v, want Hello", got)
	}
}

func TestEscapedLiteralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromLiteralStr on unvalidated input did not panic")
		}
	}()
	Greeting(0).FromLiteralStr("howdy")
}

func TestString(t *testing.T) {
	if Hello.String() != "hello" || Goodbye.String() != "goodbye" {
		t.Error("String() does not match keywords")
	}
}
