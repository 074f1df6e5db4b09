package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

var otpSpace = big.NewInt(1000000)

// GenerateOTP draws a uniformly random code from 000000-999999. Leading zeros
// are preserved: the result is always exactly 6 digit characters.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return formatOTP(n.Int64()), nil
}

func formatOTP(n int64) string {
	return fmt.Sprintf("%06d", n)
}

// GenerateResetToken returns a high-entropy opaque token safe for use in a
// reset link.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
