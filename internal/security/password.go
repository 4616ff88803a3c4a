package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes credentials at account provisioning time. Nothing
// in this service verifies passwords; session handling lives elsewhere.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
