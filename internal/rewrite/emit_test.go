package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEdits(t *testing.T) {
	src := []byte("abc 42 def 7 ghi")
	out := applyEdits(src, []edit{
		{start: 4, end: 6, text: "x(42)"},
		{start: 11, end: 12, text: "y(7)"},
	})
	require.Equal(t, "abc x(42) def y(7) ghi", string(out))
}

func TestApplyEditsEmpty(t *testing.T) {
	src := []byte("unchanged")
	require.Equal(t, "unchanged", string(applyEdits(src, nil)))
}

func TestStripDirectives(t *testing.T) {
	src := []byte(`//go:build litgo

package demo

//litgo:overload
func f() {}
`)
	out := string(stripDirectives(src, "litgo"))
	require.NotContains(t, out, "//go:build")
	require.NotContains(t, out, "//litgo:overload")
	require.Contains(t, out, "package demo")
	require.Contains(t, out, "func f() {}")
}

func TestStripDirectivesKeepsForeignConstraints(t *testing.T) {
	src := []byte(`//go:build linux

package demo
`)
	out := string(stripDirectives(src, "litgo"))
	require.Contains(t, out, "//go:build linux")
}

func TestStripDirectivesCompoundConstraint(t *testing.T) {
	src := []byte(`//go:build litgo && linux

package demo
`)
	out := string(stripDirectives(src, "litgo"))
	require.NotContains(t, out, "//go:build")
}

func TestHasBuildTag(t *testing.T) {
	require.True(t, hasBuildTag([]byte("//go:build litgo\n\npackage p\n"), "litgo"))
	require.True(t, hasBuildTag([]byte("//go:build litgo && linux\n\npackage p\n"), "litgo"))
	require.False(t, hasBuildTag([]byte("//go:build linux\n\npackage p\n"), "litgo"))
	require.False(t, hasBuildTag([]byte("package p\n\n// //go:build litgo below the clause is not a constraint\n"), "litgo"))
}

func TestGeneratedPath(t *testing.T) {
	r := New(Config{})
	require.Equal(t, "dir/file_litgo.go", r.GeneratedPath("dir/file.go"))
	r = New(Config{Suffix: "_gen.go"})
	require.Equal(t, "dir/file_gen.go", r.GeneratedPath("dir/file.go"))
}
