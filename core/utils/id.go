package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateReference returns a short human-readable code, used as the
// display reference on swap requests (e.g. "SWP-4K7QH2M").
func GenerateReference() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return "SWP-" + id
}
