package ports

// PasswordHasher performs one-way salted hashing of credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A malformed
	// hash yields false, never an error.
	Verify(plaintext, hash string) bool
}
