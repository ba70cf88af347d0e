package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um ID aleatório curto, usado para identificar execuções do agendador
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
