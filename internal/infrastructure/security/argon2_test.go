package security

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewArgon2Hasher(DefaultArgon2Params())
	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash = %q, want PHC argon2id format", hash)
	}
	if !hasher.Verify("correct horse battery staple", hash) {
		t.Error("Verify() = false for the right password")
	}
	if hasher.Verify("wrong password", hash) {
		t.Error("Verify() = true for the wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher(DefaultArgon2Params())
	a, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := hasher.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ")
	}
	if !hasher.Verify("same password", a) || !hasher.Verify("same password", b) {
		t.Error("both salted hashes must verify")
	}
}

func TestVerifyUsesEmbeddedParams(t *testing.T) {
	// A hash produced with one parameter set must verify under a hasher
	// configured with another.
	producer := NewArgon2Hasher(Argon2Params{Memory: 16 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	hash, err := producer.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	verifier := NewArgon2Hasher(DefaultArgon2Params())
	if !verifier.Verify("password123", hash) {
		t.Error("Verify() must use the parameters embedded in the hash")
	}
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(DefaultArgon2Params())
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=2$tooshort",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=1$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=bad$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	} {
		if hasher.Verify("password", encoded) {
			t.Errorf("Verify() = true for malformed hash %q", encoded)
		}
	}
}
