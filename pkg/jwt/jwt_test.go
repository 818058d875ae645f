package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse(t *testing.T) {
	token, err := Generate("secreto", "maria", "inventario-lite", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	name, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "maria", name)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto-a", "maria", "inventario-lite", 5)
	require.NoError(t, err)

	_, err = Parse("secreto-b", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secreto", "maria", "inventario-lite", -5)
	require.NoError(t, err)

	_, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "maria", "inventario-lite", 5)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, err := Parse("secreto", "ni.siquiera.jwt")
	assert.Error(t, err)
}
