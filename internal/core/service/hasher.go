package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor (2^10 iterations).
const hashCost = 10

// BcryptHasher hashes and verifies passwords with bcrypt. The per-password
// salt is embedded in the produced hash string.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify fails closed: a mismatch or a malformed hash both return false.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
