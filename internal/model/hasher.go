package model

// PasswordHasher hashes and verifies stored credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}
