package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateRunID gera um identificador curto para execuções agendadas.
// Se o gerador falhar, usa o timestamp em base 36.
func GenerateRunID(prefix string) string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		id = strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return prefix + id
}
