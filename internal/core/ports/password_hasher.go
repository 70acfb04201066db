package ports

// PasswordHasher produces salted one-way hashes and checks plaintext against them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
