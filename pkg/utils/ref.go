package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// ErrorRefLength é curto o bastante para ser ditado pelo suporte
	ErrorRefLength = 8
)

// GenerateErrorRef gera a referência que liga o diagnóstico exibido ao log da falha
func GenerateErrorRef() string {
	ref, err := gonanoid.Generate(refAlphabet, ErrorRefLength)
	if err != nil {
		return "n/a"
	}
	return ref
}
