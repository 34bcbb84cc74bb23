package authutils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomTokenString - непрозрачная строка высокой энтропии
// для refresh токенов и кодов подтверждения
func RandomTokenString(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
