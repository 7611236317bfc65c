package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("parola-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "parola-secreta", hash)

	require.NoError(t, h.Compare(hash, "parola-secreta"))
	require.Error(t, h.Compare(hash, "parola-gresita"))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	h := NewBcryptHasher(4)

	h1, err := h.Hash("aceeasi")
	require.NoError(t, err)
	h2, err := h.Hash("aceeasi")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
