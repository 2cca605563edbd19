package credentials

import "golang.org/x/crypto/bcrypt"

// FillerHash is a well-formed bcrypt digest of a throwaway value. Password
// change requests for unknown ids are verified against it so the rejection
// path performs the same comparison work as a real account.
const FillerHash = "$2a$12$wtuXTHeOcQM3F3BaBBCZPOhk0jvdyvcqYDGYrC6lC1E5cDpLMmFCa"

// HashPassword hashes a plaintext password with the configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Matches reports whether the candidate password matches the stored hash.
func Matches(hashed, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate)) == nil
}
