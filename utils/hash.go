package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Algorithm, cost and salt are
// embedded in the output, so verification needs no external state.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword recomputes with the parameters embedded in the digest and
// compares in constant time. A malformed digest verifies false.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
