package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks stored password representations.
// It knows nothing about users, storage or transport.
type PasswordHasher interface {
	// Hash derives the stored form of password with a fresh random salt.
	// The result has the form hex(salt)$hex(key).
	Hash(password string) (string, error)

	// Verify derives the key for password from the salt embedded in stored
	// and compares it with the stored key in constant time. A malformed or
	// empty stored value never verifies.
	Verify(password, stored string) bool
}
