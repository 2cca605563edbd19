package credentials

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Matches(hash, "secret1") {
		t.Fatal("original password must verify")
	}
	if Matches(hash, "secret2") {
		t.Fatal("different password must not verify")
	}
}

func TestFillerHashNeverMatches(t *testing.T) {
	for _, candidate := range []string{"", "secret1", "password", "hunter22"} {
		if Matches(FillerHash, candidate) {
			t.Fatalf("filler hash matched %q", candidate)
		}
	}
}
