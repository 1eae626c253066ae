package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash hashes a plaintext password.
	Hash(password string) (string, error)

	// Compare compares a plaintext password with a hash.
	Compare(password, hash string) error

	// ValidateStrength checks a password against the minimum requirements.
	ValidateStrength(password string) error
}
