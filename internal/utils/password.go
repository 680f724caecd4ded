package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

const (
	senhaTemporariaChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	senhaTemporariaLen   = 12
)

// GerarSenhaTemporaria gera a senha temporária de primeiro acesso de um
// recebedor cadastrado sem senha.
func GerarSenhaTemporaria() (string, error) {
	senha := make([]byte, senhaTemporariaLen)
	max := big.NewInt(int64(len(senhaTemporariaChars)))
	for i := range senha {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		senha[i] = senhaTemporariaChars[n.Int64()]
	}
	return string(senha), nil
}
