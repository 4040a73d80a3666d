package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestGenerator_Render(t *testing.T) {
	g := NewGenerator()

	png, err := g.Render(`{"type":"GATE_PASS","id":"gp_00000001"}`, 200)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG header")
}

func TestGenerator_Render_Deterministic(t *testing.T) {
	g := NewGenerator()

	first, err := g.Render("same payload", 200)
	require.NoError(t, err)
	second, err := g.Render("same payload", 200)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Render_Invalid(t *testing.T) {
	g := NewGenerator()

	_, err := g.Render("", 200)
	assert.Error(t, err)

	_, err = g.Render("payload", 0)
	assert.Error(t, err)
}
