package cssadapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/styling"
	"github.com/npillmayer/styling/style"
	"github.com/npillmayer/styling/style/cssadapter"
)

func TestDeclarations(t *testing.T) {
	c := style.Coercer{}
	m, err := cssadapter.Declarations("background: #3574f0; arc: 8;", c.Coerce)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, []string{"background", "arc"}, m.Keys())
	v, ok := m.Get("background")
	require.True(t, ok)
	_, isColor := v.AsColor()
	assert.True(t, isColor, "expected background to coerce into a color")
}

func TestDeclarationsMatchCoreParser(t *testing.T) {
	c := style.Coercer{}
	text := "foreground: white; minimumWidth: 12pt; visible: true"
	viaCSS, err := cssadapter.Declarations(text, c.Coerce)
	require.NoError(t, err)
	viaCore, err := styling.NewStyler(c.Coerce).Parse(text)
	require.NoError(t, err)
	assert.Equal(t, viaCore.Entries(), viaCSS.Entries())
}

func TestDeclarationsEmpty(t *testing.T) {
	m, err := cssadapter.Declarations("  ", nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestDeclarationsDefaultCoercion(t *testing.T) {
	m, err := cssadapter.Declarations("arc: 8", nil)
	require.NoError(t, err)
	v, _ := m.Get("arc")
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "8", s)
}
