package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomToken returns a random alphanumeric code suitable for
// one-time secrets such as password-reset tokens.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure means no safe token is possible
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
