package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera o identificador curto usado nas execuções dos jobs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
