package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpaque_Generate(t *testing.T) {
	g := NewOpaque(32)

	token, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, token, 64)

	_, err = hex.DecodeString(token)
	require.NoError(t, err)
}

func TestOpaque_DefaultSize(t *testing.T) {
	g := NewOpaque(0)

	token, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, token, DefaultOpaqueSize*2)
}

func TestOpaque_Uniqueness(t *testing.T) {
	g := NewOpaque(32)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		token, err := g.Generate()
		require.NoError(t, err)
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}
