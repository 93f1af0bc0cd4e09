package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest. Each call salts independently, so the
// same password never yields the same stored value twice.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash. A malformed hash
// fails closed: the answer is false, never an escaping error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
