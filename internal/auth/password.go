package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used when the existing password hashes
// were generated. Lowering it would silently weaken new accounts.
const bcryptCost = 12

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored digest. A mismatch
// is a normal negative result, not an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
