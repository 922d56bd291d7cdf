package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a shared password before it is persisted. The cost
// must not change once records exist.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// ComparePassword reports whether the plain password matches the hash.
func ComparePassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
