package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// GenerateState gera o valor aleatório do parâmetro state do OAuth
func GenerateState() (string, error) {
	return gonanoid.Generate(characters, 32)
}
