package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted hash from the plaintext. Called exactly once
// per plaintext-change event (create, or explicit password update); a
// generation failure is fatal to the write.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. A mismatch is
// a false, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
