// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes credentials at rest and checks login attempts
// against the stored hash.
type PasswordService interface {
	HashPassword(password string) (string, error)

	// VerifyPassword returns an error when the plain password does not
	// match the stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum length.
	ValidatePasswordStrength(password string) error
}
