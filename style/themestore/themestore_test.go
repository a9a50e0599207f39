package themestore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
	"github.com/npillmayer/styling/style/themestore"
)

const testTheme = `
accentColor = "#3574f0"
arc         = 8
opacity     = 0.85
animated    = true

[Button]
background = "$accentColor"
margin     = "2,14,2,14"
titleFont  = "bold 12pt Inter"
`

func loadTestTheme(t *testing.T) *themestore.Store {
	t.Helper()
	s, err := themestore.Load(strings.NewReader(testTheme), nil)
	require.NoError(t, err)
	return s
}

func TestLoadFlattensTables(t *testing.T) {
	s := loadTestTheme(t)
	assert.Equal(t, 7, s.Size())
	v, err := s.Resolve("Button.margin")
	require.NoError(t, err)
	ins, ok := v.AsInsets()
	require.True(t, ok, "expected Button.margin to be insets, have %s", v)
	assert.Equal(t, style.Insets{Top: 2, Left: 14, Bottom: 2, Right: 14}, ins)
}

func TestLoadCoercesScalars(t *testing.T) {
	s := loadTestTheme(t)
	v, _ := s.Resolve("arc")
	n, ok := v.AsInt()
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	v, _ = s.Resolve("opacity")
	x, ok := v.AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 0.85, x, 1e-9)
	v, _ = s.Resolve("animated")
	b, ok := v.AsBool()
	assert.True(t, ok)
	assert.True(t, b)
}

func TestResolveFollowsReferences(t *testing.T) {
	s := loadTestTheme(t)
	v, err := s.Resolve("Button.background")
	require.NoError(t, err)
	_, ok := v.AsColor()
	assert.True(t, ok, "expected Button.background to resolve through accentColor, have %s", v)
}

func TestResolveUnknownName(t *testing.T) {
	s := loadTestTheme(t)
	v, err := s.Resolve("no.such.value")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestResolveReferenceCycle(t *testing.T) {
	cyclic := `
a = "$b"
b = "$a"
`
	s, err := themestore.Load(strings.NewReader(cyclic), nil)
	require.NoError(t, err)
	_, err = s.Resolve("a")
	assert.Error(t, err)
}

func TestStoreBehindStyler(t *testing.T) {
	s := loadTestTheme(t)
	c := style.Coercer{Store: s}
	m, err := styling.NewStyler(c.Coerce).Parse("background: $Button.background; arc: $arc")
	require.NoError(t, err)
	v, _ := m.Get("background")
	_, isColor := v.AsColor()
	assert.True(t, isColor)
	v, _ = m.Get("arc")
	n, _ := v.AsInt()
	assert.Equal(t, 8, n)
}
