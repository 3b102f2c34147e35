package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OtpLength is the number of digits in a one-time password.
const OtpLength = 6

// GenerateOtpCode returns a random zero-padded numeric code.
func GenerateOtpCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < OtpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OtpLength, n), nil
}
