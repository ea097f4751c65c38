package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of the plaintext. Two
// calls with the same input yield different digests; both verify.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
// bcrypt's comparison is constant-time; malformed digests simply fail.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
