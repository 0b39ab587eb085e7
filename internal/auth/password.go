package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier compares a stored credential against a plaintext
// password. The gate does not assume any particular hashing scheme;
// alternative implementations can be swapped in.
type CredentialVerifier interface {
	Verify(hash, plain string) bool
}

// BcryptVerifier verifies bcrypt hashes; it is the default scheme used
// by the admins table.
type BcryptVerifier struct{}

// Verify reports whether plain matches the bcrypt hash.
func (BcryptVerifier) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// HashPassword returns the bcrypt hash of plain using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
