package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateShortID gera um identificador curto, usado para rotular o snapshot
// do dataset carregado em memória
func GenerateShortID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
