// Package service defines the ports for stateless domain logic the usecases call into.
package service

// MaxPasswordBytes is the longest password a PasswordHasher accepts. bcrypt ignores
// everything past it, so callers reject longer input instead of truncating silently.
const MaxPasswordBytes = 72

// PasswordHasher turns a registration password into a stored digest and checks
// login attempts against it. Check is the only way two credentials are compared.
type PasswordHasher interface {
	// Hash returns a salted digest; two calls with the same plaintext differ.
	Hash(password string) (string, error)

	Check(password, hash string) bool
}
