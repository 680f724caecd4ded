package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("minha-senha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "minha-senha-forte", hash)

	assert.True(t, VerificarSenha(hash, "minha-senha-forte"))
	assert.False(t, VerificarSenha(hash, "outra-senha"))
	assert.False(t, VerificarSenha("", "minha-senha-forte"))
}

func TestGerarSenhaTemporaria(t *testing.T) {
	senha, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.Len(t, senha, senhaTemporariaLen)
	for _, c := range senha {
		assert.True(t, strings.ContainsRune(senhaTemporariaChars, c), "caractere %q fora do alfabeto", c)
	}

	// a senha temporária passa pelo mesmo fluxo de hash do cadastro
	hash, err := HashSenha(senha)
	require.NoError(t, err)
	assert.True(t, VerificarSenha(hash, senha))

	outra, err := GerarSenhaTemporaria()
	require.NoError(t, err)
	assert.NotEqual(t, senha, outra)
}
