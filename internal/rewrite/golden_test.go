package rewrite

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/litgo/internal/diagnostics"
)

// The fixture imports the dispatch packages itself, so the generated file's
// import block is exactly the source's and the output is stable gofmt text.
const goldenSrc = `//go:build litgo

package demo

import (
	"github.com/funvibe/litgo/pkg/lit"
	"github.com/funvibe/litgo/pkg/typestr"
)

type Score struct{ v uint8 }

func (Score) FromLiteralUnsigned(v uint64) Score { return Score{uint8(v)} }

func (Score) FromLiteralSigned(v int64) Score { return Score{uint8(v)} }

type Mood struct{ s string }

func (Mood) FromLiteralStr(v string) Mood { return Mood{v} }

//litgo:overload
func build() (Score, Mood) {
	var s Score = 42
	var m Mood = "sad"
	return s, m
}
`

func TestGoldenGeneratedFile(t *testing.T) {
	fset, file, pkg, info := typecheckSrc(t, goldenSrc)
	content, sites, diags := New(Config{}).ProcessFile(fset, file, []byte(goldenSrc), pkg, info)
	require.Empty(t, diags)
	require.Equal(t, 2, sites)

	g := goldie.New(t)
	g.Assert(t, "build_litgo", content)
}

func TestGoldenDiagnostics(t *testing.T) {
	src := fixtureHeader + `
//litgo:overload
func demo() {
	var a Score = 0
	var b Score = 101
	var c uint8 = 256
	var m Mood = "angry"
	take(0, -200)
}
`
	fset, file, pkg, info := typecheckSrc(t, src)
	content, _, diags := New(Config{}).ProcessFile(fset, file, []byte(src), pkg, info)
	require.Empty(t, content)
	require.Len(t, diags, 6)

	var buf bytes.Buffer
	diagnostics.Print(&buf, diags)

	g := goldie.New(t)
	g.Assert(t, "diagnostics", buf.Bytes())
}
