package security

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a bcrypt digest for the given plaintext with a
// per-call random salt. It errors if the password is longer than 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword returns an error if the plaintext does not resolve to the
// given digest. A malformed digest also yields an error, so verification
// fails closed.
func ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
